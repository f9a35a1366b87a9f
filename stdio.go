// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"encoding/binary"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
)

// String renders b in a canonical textual form: a sequence of "V,L,H|"
// records in array order, terminals first. V is the
// tested variable (the sentinel vars.N() for a terminal), L and H are node
// indices into the same sequence; the last record is always the root. Two
// Bdds denote the same function iff their strings are byte-identical.
func (b *Bdd) String() string {
	var sb strings.Builder
	for _, nd := range b.nodes {
		sb.WriteString(strconv.Itoa(nd.variable))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(nd.low))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(nd.high))
		sb.WriteByte('|')
	}
	return sb.String()
}

// FromString parses the canonical textual form produced by String, attaching
// the result to vs. Fails with SerializationError on malformed input, and
// with NotCanonical if the parsed array is not reduced and ordered.
func FromString(vs *VariableSet, s string) (*Bdd, error) {
	s = strings.TrimSuffix(s, "|")
	if s == "" {
		return nil, &SerializationError{Reason: "empty input"}
	}
	fields := strings.Split(s, "|")
	nodes := make([]node, 0, len(fields))
	for i, rec := range fields {
		parts := strings.Split(rec, ",")
		if len(parts) != 3 {
			return nil, &SerializationError{Reason: fmt.Sprintf("record %d: expected 3 fields, found %d", i, len(parts))}
		}
		v, err1 := strconv.Atoi(parts[0])
		l, err2 := strconv.Atoi(parts[1])
		h, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, &SerializationError{Reason: fmt.Sprintf("record %d: non-integer field", i)}
		}
		nodes = append(nodes, node{variable: v, low: l, high: h})
	}
	return fromCanonicalNodes(vs, nodes)
}

// Bytes renders b in a compact binary form: for every
// node in array order, a little-endian uint16 variable followed by two
// little-endian uint32 node indices. The node count is implicit in the
// stream length.
func (b *Bdd) Bytes() []byte {
	out := make([]byte, 0, len(b.nodes)*10)
	var buf [10]byte
	for _, nd := range b.nodes {
		binary.LittleEndian.PutUint16(buf[0:2], uint16(nd.variable))
		binary.LittleEndian.PutUint32(buf[2:6], uint32(nd.low))
		binary.LittleEndian.PutUint32(buf[6:10], uint32(nd.high))
		out = append(out, buf[:]...)
	}
	return out
}

// FromBytes parses the binary form produced by Bytes, attaching the result
// to vs. Fails with SerializationError on a truncated stream, and with
// NotCanonical if the parsed array is not reduced and ordered.
func FromBytes(vs *VariableSet, data []byte) (*Bdd, error) {
	if len(data)%10 != 0 {
		return nil, &SerializationError{Reason: "stream length is not a multiple of the 10-byte record size"}
	}
	count := len(data) / 10
	if count == 0 {
		return nil, &SerializationError{Reason: "empty input"}
	}
	nodes := make([]node, 0, count)
	for i := 0; i < count; i++ {
		rec := data[i*10 : i*10+10]
		v := binary.LittleEndian.Uint16(rec[0:2])
		l := binary.LittleEndian.Uint32(rec[2:6])
		h := binary.LittleEndian.Uint32(rec[6:10])
		nodes = append(nodes, node{variable: int(v), low: int(l), high: int(h)})
	}
	return fromCanonicalNodes(vs, nodes)
}

// fromCanonicalNodes is shared by FromString and FromBytes: it checks that
// the parsed array is exactly the shape a Bdd is allowed to have (terminals
// first, reduced, ordered, children before parents) before accepting it.
func fromCanonicalNodes(vs *VariableSet, nodes []node) (*Bdd, error) {
	if ok, _ := reducedOrdered(vs, nodes); !ok {
		return nil, ErrNotCanonical
	}
	if len(nodes) == 1 {
		return falseBdd(vs), nil
	}
	out := make([]node, len(nodes))
	copy(out, nodes)
	return &Bdd{vars: vs, nodes: out}, nil
}

// Dot writes b as a Graphviz digraph: terminals as boxes, decision nodes as
// circles labeled with their variable name, a dashed edge to low and a solid
// edge to high. A terminal unreachable from the root is omitted: True for
// the constant-false Bdd, False for the constant-true Bdd.
func (b *Bdd) Dot(w io.Writer) error {
	write := func(format string, args ...interface{}) error {
		_, err := fmt.Fprintf(w, format, args...)
		return err
	}
	if err := write("digraph G {\n"); err != nil {
		return err
	}
	if !b.IsTrue() {
		if err := write("0 [shape=box, label=\"0\", style=filled, height=0.3, width=0.3];\n"); err != nil {
			return err
		}
	}
	if len(b.nodes) > 1 {
		if err := write("1 [shape=box, label=\"1\", style=filled, height=0.3, width=0.3];\n"); err != nil {
			return err
		}
	}
	for i := 2; i < len(b.nodes); i++ {
		nd := b.nodes[i]
		name, _ := b.vars.Name(nd.variable)
		if err := write("%d [label=\"%s\"];\n", i, name); err != nil {
			return err
		}
		if err := write("%d -> %d [style=dashed];\n", i, nd.low); err != nil {
			return err
		}
		if err := write("%d -> %d [style=solid];\n", i, nd.high); err != nil {
			return err
		}
	}
	return write("}\n")
}

// Print writes a tab-aligned dump of b's node array to w, one decision node
// per line as "index [level] ? high : low".
func (b *Bdd) Print(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	indices := make([]int, 0, len(b.nodes))
	for i := 2; i < len(b.nodes); i++ {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	for _, i := range indices {
		nd := b.nodes[i]
		fmt.Fprintf(tw, "%d\t[%d]\t?\t%d\t:\t%d\n", i, nd.variable, nd.high, nd.low)
	}
	tw.Flush()
}
