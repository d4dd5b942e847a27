package protoreg

import (
	"hash/fnv"
	"sort"

	"github.com/jhump/protoreflect/v2/protobuilder"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// Proto reserves field numbers 19000-19999 for implementation use; tag
// assignment below treats that range as unavailable.
const (
	maxTagNumber  = 31767
	reservedStart = 19000
	reservedEnd   = 19999
)

func allocateFieldNumbers(fieldBuilders []*protobuilder.FieldBuilder) {
	names := fieldNamesOf(fieldBuilders)
	numbers := assignDeterministicTags(names)
	for i, fb := range fieldBuilders {
		fb.SetNumber(protoreflect.FieldNumber(numbers[i]))
	}
}

func allocateEnumValueNumbers(enumValueBuilders []*protobuilder.EnumValueBuilder) {
	names := make([]string, len(enumValueBuilders))
	for i, evb := range enumValueBuilders {
		names[i] = string(evb.Name())
	}
	numbers := assignDeterministicTags(names)
	for i, evb := range enumValueBuilders {
		evb.SetNumber(protoreflect.EnumNumber(numbers[i]))
	}
}

func fieldNamesOf(fieldBuilders []*protobuilder.FieldBuilder) []string {
	names := make([]string, len(fieldBuilders))
	for i, fb := range fieldBuilders {
		names[i] = string(fb.Name())
	}
	return names
}

// assignDeterministicTags gives every name a stable proto tag number derived
// from its FNV-32a hash, so two builds of the same schema produce the same
// wire numbers without a separate allocation ledger. Names are sorted before
// assignment so that collisions resolve in a name-order-independent way,
// then mapped back to the caller's original ordering.
//
//  1. candidate = (fnv32a(name) % 31767) + 1, giving a value in [1, 31767]
//  2. a candidate landing in the reserved block [19000, 19999] jumps past it
//  3. a candidate already taken linearly probes forward, wrapping at 31767
func assignDeterministicTags(names []string) []int {
	if len(names) == 0 {
		return nil
	}

	type candidate struct {
		name string
		idx  int
	}
	ordered := make([]candidate, len(names))
	for i, n := range names {
		ordered[i] = candidate{name: n, idx: i}
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].name < ordered[j].name })

	result := make([]int, len(names))
	taken := make(map[int]bool, len(names))
	for _, c := range ordered {
		result[c.idx] = nextFreeTag(c.name, taken)
	}
	return result
}

func nextFreeTag(name string, taken map[int]bool) int {
	start := int(fnv32a(name)%maxTagNumber) + 1
	cand := start
	for {
		if cand >= reservedStart && cand <= reservedEnd {
			cand = reservedEnd + 1
			if cand > maxTagNumber {
				cand = 1
			}
			if cand == start {
				panic("protoreg: exhausted tag space (reserved block)")
			}
			continue
		}
		if !taken[cand] {
			taken[cand] = true
			return cand
		}
		cand++
		if cand > maxTagNumber {
			cand = 1
		}
		if cand == start {
			panic("protoreg: exhausted tag space")
		}
	}
}

func fnv32a(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}
