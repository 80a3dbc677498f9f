// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 obsgen authors

// Package typetree turns the protocol document's flat dotted field paths into
// nested type trees. Each entity (a request's parameters, a request's
// response, or an event's payload) yields one tree rooted at an object node;
// emitters stringify the tree into declaration text.
package typetree

// Kind discriminates the type tree node variants.
type Kind int

const (
	// KindString is the string scalar.
	KindString Kind = iota
	// KindNumber is the numeric scalar.
	KindNumber
	// KindBoolean is the boolean scalar.
	KindBoolean
	// KindAny is an unconstrained JSON value.
	KindAny
	// KindObject is an object with ordered named properties.
	KindObject
	// KindArray is an array of a single element type.
	KindArray
)

// Property is one named member of an object node. Properties keep insertion
// order; emitters must not reorder them.
type Property struct {
	Name string
	Node *Node
}

// Node is one node of a type tree.
//
// Properties is set only for KindObject, Elem only for KindArray. Optional is
// meaningless on array element nodes. Doc holds documentation lines to be
// placed above the field in the rendered declaration.
type Node struct {
	Kind       Kind
	Properties []Property
	Elem       *Node
	Optional   bool
	Doc        []string

	// synthesized marks container nodes created while unflattening a longer
	// path, as opposed to nodes produced from a declared leaf type.
	synthesized bool
}

func newObject() *Node {
	return &Node{Kind: KindObject}
}

// Property returns the named property's node, or nil.
func (n *Node) Property(name string) *Node {
	for i := range n.Properties {
		if n.Properties[i].Name == name {
			return n.Properties[i].Node
		}
	}
	return nil
}

// setProperty adds or replaces a property. A replaced property keeps its
// original position, so sibling order always follows first insertion.
func (n *Node) setProperty(name string, child *Node) {
	for i := range n.Properties {
		if n.Properties[i].Name == name {
			n.Properties[i].Node = child
			return
		}
	}
	n.Properties = append(n.Properties, Property{Name: name, Node: child})
}
