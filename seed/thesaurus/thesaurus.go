// Package thesaurus builds and statically validates the controlled
// vocabularies before any entity is generated. Validation is a hard
// precondition of a generation run, not a best-effort check: a single
// duplicate label, ambiguous alias, dangling edge or broader-cycle aborts
// the whole run before any output is written.
package thesaurus

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Justin21523/school-library-lms/seed"
	"github.com/Justin21523/school-library-lms/seed/vocab"
)

var ErrDuplicatePreferredLabel = errors.New("duplicate preferred label")
var ErrVariantCollidesWithPreferred = errors.New("variant label equals a preferred label")
var ErrVariantClaimedTwice = errors.New("variant label claimed by two terms")
var ErrUnknownEdgeEndpoint = errors.New("edge references unknown preferred label")
var ErrSelfRelation = errors.New("edge relates a term to itself")
var ErrUnknownRelationType = errors.New("unknown relation type")
var ErrBroaderCycle = errors.New("broader-edge cycle")

// Graph is one vocabulary assembled into validated lookup structures:
// label resolution (preferred and variant) and the broader adjacency.
type Graph struct {
	vocabulary vocab.Vocabulary

	preferred    map[string]struct{}
	variantOwner map[string]string

	// parents maps each term to its broader terms, in edge definition order.
	parents map[string][]string
}

// Build assembles the vocabulary and performs every structural check except
// acyclicity: preferred-label uniqueness, variant integrity, and edge
// referential integrity.
func Build(v vocab.Vocabulary) (*Graph, error) {
	g := &Graph{
		vocabulary:   v,
		preferred:    make(map[string]struct{}, len(v.Terms)),
		variantOwner: make(map[string]string),
		parents:      make(map[string][]string),
	}

	for _, term := range v.Terms {
		if _, exists := g.preferred[term.Preferred]; exists {
			return nil, g.fail(ErrDuplicatePreferredLabel, term.Preferred)
		}
		g.preferred[term.Preferred] = struct{}{}
	}

	// Variants are checked in a second pass so that a variant colliding
	// with a later term's preferred label is still caught.
	for _, term := range v.Terms {
		for _, variant := range term.Variants {
			if _, exists := g.preferred[variant]; exists {
				return nil, g.fail(ErrVariantCollidesWithPreferred, variant)
			}
			if owner, claimed := g.variantOwner[variant]; claimed && owner != term.Preferred {
				return nil, fmt.Errorf("%w in %s/%s: %q claimed by %q and %q",
					ErrVariantClaimedTwice, v.Kind, v.Code, variant, owner, term.Preferred)
			}
			g.variantOwner[variant] = term.Preferred
		}
	}

	for _, edge := range v.Edges {
		if edge.Type != seed.RelationBroader && edge.Type != seed.RelationRelated {
			return nil, g.fail(ErrUnknownRelationType, edge.Type)
		}
		if _, ok := g.preferred[edge.From]; !ok {
			return nil, g.fail(ErrUnknownEdgeEndpoint, edge.From)
		}
		if _, ok := g.preferred[edge.To]; !ok {
			return nil, g.fail(ErrUnknownEdgeEndpoint, edge.To)
		}
		if edge.From == edge.To {
			return nil, g.fail(ErrSelfRelation, edge.From)
		}

		if edge.Type == seed.RelationBroader {
			g.parents[edge.From] = append(g.parents[edge.From], edge.To)
		}
	}

	return g, nil
}

// Validate builds the vocabulary and additionally checks that the broader
// subgraph is acyclic.
func Validate(v vocab.Vocabulary) error {
	g, err := Build(v)
	if err != nil {
		return err
	}

	return g.CheckAcyclic()
}

// ValidateAll validates every vocabulary independently and stops at the
// first failure.
func ValidateAll(vocabularies []vocab.Vocabulary) error {
	for _, v := range vocabularies {
		if err := Validate(v); err != nil {
			return err
		}
	}

	return nil
}

// CheckAcyclic runs a three-color depth-first traversal over the broader
// edges. Hitting an in-progress term again means a term is its own
// ancestor; the error names the full failing path.
func (g *Graph) CheckAcyclic() error {
	const (
		unvisited  = 0
		inProgress = 1
		done       = 2
	)

	color := make(map[string]int, len(g.vocabulary.Terms))
	var path []string

	var visit func(label string) error
	visit = func(label string) error {
		color[label] = inProgress
		path = append(path, label)

		for _, parent := range g.parents[label] {
			switch color[parent] {
			case inProgress:
				cycle := append(append([]string(nil), cycleStart(path, parent)...), parent)
				return fmt.Errorf("%w in %s/%s: %s",
					ErrBroaderCycle, g.vocabulary.Kind, g.vocabulary.Code, strings.Join(cycle, " -> "))
			case unvisited:
				if err := visit(parent); err != nil {
					return err
				}
			}
		}

		path = path[:len(path)-1]
		color[label] = done

		return nil
	}

	for _, term := range g.vocabulary.Terms {
		if color[term.Preferred] == unvisited {
			if err := visit(term.Preferred); err != nil {
				return err
			}
		}
	}

	return nil
}

// cycleStart trims the traversal path to the segment that forms the cycle.
func cycleStart(path []string, label string) []string {
	for i, p := range path {
		if p == label {
			return path[i:]
		}
	}

	return path
}

func (g *Graph) fail(sentinel error, label string) error {
	return fmt.Errorf("%w in %s/%s: %q", sentinel, g.vocabulary.Kind, g.vocabulary.Code, label)
}
