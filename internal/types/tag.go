package types

import (
	"fmt"
	"strings"
)

// Tag approximates a possible runtime shape of a value.
type Tag uint8

const (
	TagFunction Tag = iota
	TagObject
	TagArray
	TagClass
	TagString
	TagNumber
	TagBoolean
	TagRegExp
	// рамочные теги, см. DefaultTable
	TagSelector    // результат $(...) / jQuery(...)
	TagModel       // класс, полученный Backbone.Model.extend(...)
	TagModelObject // экземпляр такого класса
	tagCount
)

var tagNames = [tagCount]string{
	TagFunction:    "function",
	TagObject:      "object",
	TagArray:       "array",
	TagClass:       "class",
	TagString:      "string",
	TagNumber:      "number",
	TagBoolean:     "boolean",
	TagRegExp:      "regexp",
	TagSelector:    "jquery-selector-object",
	TagModel:       "backbone-model",
	TagModelObject: "backbone-model-object",
}

func (t Tag) String() string {
	if t < tagCount {
		return tagNames[t]
	}
	return fmt.Sprintf("Tag(%d)", t)
}

// IsConstructor reports whether values with this tag can be used with `new`.
func (t Tag) IsConstructor() bool {
	return t == TagFunction || t == TagClass || t == TagModel
}

// TagByName looks a tag up by its String form.
func TagByName(name string) (Tag, bool) {
	for i, n := range tagNames {
		if n == name {
			return Tag(i), true
		}
	}
	return 0, false
}

// Set is an unordered set of tags. The zero value is empty; sets only grow.
type Set uint32

func NewSet(tags ...Tag) Set {
	var s Set
	for _, t := range tags {
		s = s.Add(t)
	}
	return s
}

func (s Set) Add(t Tag) Set       { return s | 1<<t }
func (s Set) Has(t Tag) bool      { return s&(1<<t) != 0 }
func (s Set) Union(o Set) Set     { return s | o }
func (s Set) Empty() bool         { return s == 0 }
func (s Set) Contains(o Set) bool { return s&o == o }

// Len returns the number of tags.
func (s Set) Len() int {
	n := 0
	for t := Tag(0); t < tagCount; t++ {
		if s.Has(t) {
			n++
		}
	}
	return n
}

// Tags lists the members in Tag order.
func (s Set) Tags() []Tag {
	out := make([]Tag, 0, s.Len())
	for t := Tag(0); t < tagCount; t++ {
		if s.Has(t) {
			out = append(out, t)
		}
	}
	return out
}

// Unique returns the only tag of a one-element set.
func (s Set) Unique() (Tag, bool) {
	if s.Len() != 1 {
		return 0, false
	}
	return s.Tags()[0], true
}

func (s Set) String() string {
	tags := s.Tags()
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = t.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
