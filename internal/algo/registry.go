package algo

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknown indicates an algorithm identifier with no registered implementation.
var ErrUnknown = errors.New("algo: unknown algorithm")

// Complexity is a pair of asymptotic classes for one case.
type Complexity struct {
	Time  string `json:"time" yaml:"time"`
	Space string `json:"space" yaml:"space"`
}

// Descriptor is read-only metadata about an algorithm.
type Descriptor struct {
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description" yaml:"description"`
	Best        Complexity `json:"best" yaml:"best"`
	Average     Complexity `json:"average" yaml:"average"`
	Worst       Complexity `json:"worst" yaml:"worst"`
}

type entry struct {
	desc Descriptor
	fn   Func
}

type Registry struct {
	entries map[string]entry
	aliases map[string]string
	order   []string
}

func NewRegistry() *Registry {
	r := &Registry{
		entries: make(map[string]entry),
		aliases: make(map[string]string),
	}

	r.register(Descriptor{
		ID:          "bubble",
		Name:        "Bubble Sort",
		Description: "Bubble Sort repeatedly steps through the list, compares adjacent elements and swaps them if they are in the wrong order. The pass through the list is repeated until the list is sorted.",
		Best:        Complexity{Time: "O(n)", Space: "O(1)"},
		Average:     Complexity{Time: "O(n²)", Space: "O(1)"},
		Worst:       Complexity{Time: "O(n²)", Space: "O(1)"},
	}, Bubble)
	r.register(Descriptor{
		ID:          "selection",
		Name:        "Selection Sort",
		Description: "Selection Sort divides the input list into two parts: a sorted sublist and an unsorted sublist. It repeatedly selects the smallest element from the unsorted sublist and moves it to the end of the sorted sublist.",
		Best:        Complexity{Time: "O(n²)", Space: "O(1)"},
		Average:     Complexity{Time: "O(n²)", Space: "O(1)"},
		Worst:       Complexity{Time: "O(n²)", Space: "O(1)"},
	}, Selection)
	r.register(Descriptor{
		ID:          "insertion",
		Name:        "Insertion Sort",
		Description: "Insertion Sort builds the final sorted array one item at a time. It takes each element from the input and inserts it into its correct position in the sorted part of the array.",
		Best:        Complexity{Time: "O(n)", Space: "O(1)"},
		Average:     Complexity{Time: "O(n²)", Space: "O(1)"},
		Worst:       Complexity{Time: "O(n²)", Space: "O(1)"},
	}, Insertion)
	r.register(Descriptor{
		ID:          "merge",
		Name:        "Merge Sort",
		Description: "Merge Sort is a divide and conquer algorithm. It divides the input array into two halves, recursively sorts them, and then merges the two sorted halves.",
		Best:        Complexity{Time: "O(n log n)", Space: "O(n)"},
		Average:     Complexity{Time: "O(n log n)", Space: "O(n)"},
		Worst:       Complexity{Time: "O(n log n)", Space: "O(n)"},
	}, Merge)
	r.register(Descriptor{
		ID:          "quick",
		Name:        "Quick Sort",
		Description: "Quick Sort is a divide and conquer algorithm. It picks a pivot element and partitions the array around the pivot, then recursively sorts the sub-arrays.",
		Best:        Complexity{Time: "O(n log n)", Space: "O(log n)"},
		Average:     Complexity{Time: "O(n log n)", Space: "O(log n)"},
		Worst:       Complexity{Time: "O(n²)", Space: "O(log n)"},
	}, Quick)

	return r
}

// register adds d under its ID, plus the "<id>Sort" spelling as an alias.
func (r *Registry) register(d Descriptor, fn Func) {
	r.entries[d.ID] = entry{desc: d, fn: fn}
	r.aliases[strings.ToLower(d.ID+"sort")] = d.ID
	r.order = append(r.order, d.ID)
}

func (r *Registry) resolve(id string) (entry, bool) {
	key := strings.ToLower(strings.TrimSpace(id))
	if alias, ok := r.aliases[key]; ok {
		key = alias
	}
	e, ok := r.entries[key]
	return e, ok
}

func (r *Registry) Get(id string) (Descriptor, Func, error) {
	e, ok := r.resolve(id)
	if !ok {
		return Descriptor{}, nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknown, id, strings.Join(r.order, ", "))
	}
	return e.desc, e.fn, nil
}

func (r *Registry) Describe(id string) (Descriptor, error) {
	d, _, err := r.Get(id)
	return d, err
}

// IDs returns identifiers in registration order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entries[id].desc)
	}
	return out
}
