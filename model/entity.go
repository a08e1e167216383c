// Copyright (c) 2026, Mapforge Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/jinzhu/copier"

	"github.com/mapforge/mapforge/base/ordmap"
	"github.com/mapforge/mapforge/math32"
)

// PropertyOrigin is the key of the property holding an entity's origin.
const PropertyOrigin = "origin"

// DefaultEntityExtent is the half extent of the bounding box of a point
// entity around its origin.
const DefaultEntityExtent = 8

// PropertyConfig controls how numeric property values are written back
// to an entity, e.g., when its origin is transformed.
type PropertyConfig struct {

	// Precision is the number of decimal places written for numeric
	// values; a negative value writes the shortest exact representation.
	Precision int
}

// DefaultPropertyConfig is the property configuration used when no
// document-specific configuration applies.
var DefaultPropertyConfig = PropertyConfig{Precision: -1}

// FormatFloat returns the string form of the given value under this
// configuration.
func (c PropertyConfig) FormatFloat(value float32) string {
	prec := c.Precision
	if prec < 0 {
		return strconv.FormatFloat(float64(value), 'f', -1, 32)
	}
	s := strconv.FormatFloat(float64(value), 'f', prec, 32)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// Entity is the payload of an [EntityNode]: an insertion-ordered list of
// key/value properties, the set of protected property keys, and the
// optional link ID tying the entity to its counterparts in a link set.
type Entity struct {

	// Properties holds the entity's key/value properties in the order
	// they were added. Removing and re-adding a key moves it to the end.
	Properties *ordmap.Map[string, string]

	// ProtectedProperties lists the property keys that are exempt from
	// being overwritten when a linked group update propagates property
	// changes onto this entity. Protection flags are editor-local and
	// are not synchronized.
	ProtectedProperties []string

	// LinkID is the stable identifier shared with the entities at the
	// same structural position in all other members of a link set, or
	// empty if the entity is not part of one.
	LinkID string
}

// NewEntity returns a new empty entity payload.
func NewEntity() Entity {
	return Entity{Properties: ordmap.New[string, string]()}
}

// Clone returns a deep copy of this entity.
func (e Entity) Clone() Entity {
	clone := Entity{}
	err := copier.CopyWithOption(&clone, &e, copier.Option{DeepCopy: true})
	if err != nil {
		slog.Error("model.Entity.Clone", "err", err)
	}
	if clone.Properties == nil {
		clone.Properties = ordmap.New[string, string]()
	}
	return clone
}

// Property returns the value of the property with the given key, along
// with whether the property is present.
func (e *Entity) Property(key string) (string, bool) {
	if e.Properties == nil {
		return "", false
	}
	return e.Properties.ValueByKey(key)
}

// SetProperty sets the property with the given key to the given value,
// keeping its position if it already exists and appending it otherwise.
func (e *Entity) SetProperty(key, value string) {
	if e.Properties == nil {
		e.Properties = ordmap.New[string, string]()
	}
	e.Properties.Add(key, value)
}

// RemoveProperty removes the property with the given key, returning
// whether it was present.
func (e *Entity) RemoveProperty(key string) bool {
	if e.Properties == nil {
		return false
	}
	return e.Properties.DeleteKey(key)
}

// HasProtectedProperty returns whether the given key is protected on
// this entity.
func (e *Entity) HasProtectedProperty(key string) bool {
	for _, k := range e.ProtectedProperties {
		if k == key {
			return true
		}
	}
	return false
}

// Origin returns the origin of this entity, parsed from its origin
// property; entities without a valid origin property sit at the zero point.
func (e *Entity) Origin() math32.Vector3 {
	value, ok := e.Property(PropertyOrigin)
	if !ok {
		return math32.Vector3{}
	}
	fields := strings.Fields(value)
	if len(fields) != 3 {
		return math32.Vector3{}
	}
	origin := math32.Vector3{}
	for i, field := range fields {
		f, err := strconv.ParseFloat(field, 32)
		if err != nil {
			return math32.Vector3{}
		}
		switch i {
		case 0:
			origin.X = float32(f)
		case 1:
			origin.Y = float32(f)
		case 2:
			origin.Z = float32(f)
		}
	}
	return origin
}

// SetOrigin writes the given origin into the entity's origin property
// using the given property configuration.
func (e *Entity) SetOrigin(config PropertyConfig, origin math32.Vector3) {
	e.SetProperty(PropertyOrigin, strings.Join([]string{
		config.FormatFloat(origin.X),
		config.FormatFloat(origin.Y),
		config.FormatFloat(origin.Z),
	}, " "))
}

// Transform applies the given affine transformation to this entity's
// origin, writing the result back under the given property configuration.
func (e *Entity) Transform(config PropertyConfig, m *math32.Matrix4) {
	e.SetOrigin(config, e.Origin().MulMatrix4(m))
}

// Equal returns whether this entity and the other have the same
// properties in the same order, the same protected properties, and the
// same link ID.
func (e *Entity) Equal(other *Entity) bool {
	if e.LinkID != other.LinkID {
		return false
	}
	if len(e.ProtectedProperties) != len(other.ProtectedProperties) {
		return false
	}
	for i, k := range e.ProtectedProperties {
		if other.ProtectedProperties[i] != k {
			return false
		}
	}
	if e.Properties.Len() != other.Properties.Len() {
		return false
	}
	for i, kv := range e.Properties.Order {
		if other.Properties.Order[i] != kv {
			return false
		}
	}
	return true
}

// EntityNode is a scene node holding an entity. Point entities have no
// children; brush entities own brush and patch nodes.
type EntityNode struct {
	NodeBase

	entity Entity
}

// NewEntityNode returns a new entity node with the given payload.
func NewEntityNode(entity Entity) *EntityNode {
	if entity.Properties == nil {
		entity.Properties = ordmap.New[string, string]()
	}
	n := &EntityNode{entity: entity}
	initNode(n)
	return n
}

// Name returns the classname of the entity, or "entity" if it has none.
func (n *EntityNode) Name() string {
	if classname, ok := n.entity.Property("classname"); ok {
		return classname
	}
	return "entity"
}

// Entity returns the payload of this entity node. The returned pointer
// is for reading; modify an entity by cloning, changing and calling
// [EntityNode.SetEntity].
func (n *EntityNode) Entity() *Entity {
	return &n.entity
}

// SetEntity replaces the payload of this entity node and returns the
// previous payload.
func (n *EntityNode) SetEntity(entity Entity) Entity {
	old := n.entity
	n.entity = entity
	n.InvalidateBounds()
	return old
}

// PropertyConfig returns the property configuration in effect for this
// entity.
func (n *EntityNode) PropertyConfig() PropertyConfig {
	return DefaultPropertyConfig
}

// DefaultBounds returns the bounding box of a point entity: a cube of
// [DefaultEntityExtent] half extent centered on the origin.
func (e *Entity) DefaultBounds() math32.Box3 {
	return math32.B3Scalar(DefaultEntityExtent).Translate(e.Origin())
}
