// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 NamedLoot Contributors

package rule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/samber/oops"
)

// whenLexer tokenizes compact condition chains such as
//
//	name contains "ore" && count > 10
var whenLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"[^"]*"`},
	{Name: "Int", Pattern: `-?\d+`},
	{Name: "Op", Pattern: `&&|==|[<>=]`},
	{Name: "Ident", Pattern: `[a-zA-Z_]+`},
	{Name: "whitespace", Pattern: `\s+`},
})

// whenChain is one or more clauses joined by "&&" or "and".
type whenChain struct {
	Clauses []*whenClause `parser:"@@ ( ( '&&' | 'and' ) @@ )*"`
}

// whenClause tests either the name or the count.
type whenClause struct {
	Name  *nameClause  `parser:"  'name' @@"`
	Count *countClause `parser:"| 'count' @@"`
}

type nameClause struct {
	Op    string `parser:"@( 'contains' | 'matches' )"`
	Value string `parser:"@String"`
}

type countClause struct {
	Op    string `parser:"@( '<' | '>' | '==' | '=' )"`
	Value int    `parser:"@Int"`
}

// whenParser is the singleton participle parser instance.
var whenParser *participle.Parser[whenChain]

func init() {
	var err error
	whenParser, err = participle.Build[whenChain](
		participle.Lexer(whenLexer),
		participle.Unquote("String"),
		participle.CaseInsensitive("Ident"),
	)
	if err != nil {
		panic(fmt.Sprintf("failed to build rule expression parser: %v", err))
	}
}

// ParseWhen parses a compact condition chain into conditions, in order.
//
// Grammar:
//
//	chain  = clause { ("&&" | "and") clause }
//	clause = "name" ("contains" | "matches") string
//	       | "count" ("<" | ">" | "=" | "==") integer
//
// Keywords are case-insensitive.
func ParseWhen(expr string) ([]Condition, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, oops.Code("WHEN_EMPTY").Errorf("rule expression is empty")
	}

	chain, err := whenParser.ParseString("", expr)
	if err != nil {
		return nil, oops.Code("WHEN_PARSE_FAILED").With("expr", expr).Wrapf(err, "parsing rule expression")
	}

	conds := make([]Condition, 0, len(chain.Clauses))
	for _, cl := range chain.Clauses {
		c := cl.condition()
		if !c.Valid() {
			return nil, oops.Code("WHEN_INVALID_CONDITION").
				With("expr", expr).
				With("condition", c.String()).
				Errorf("invalid condition: %s", c.Problem())
		}
		conds = append(conds, c)
	}
	return conds, nil
}

// condition converts a parsed clause to its decoded form.
func (cl *whenClause) condition() Condition {
	if cl.Name != nil {
		if strings.EqualFold(cl.Name.Op, "matches") {
			return NameMatches(cl.Name.Value)
		}
		return NameContains(cl.Name.Value)
	}

	value := strconv.Itoa(cl.Count.Value)
	switch cl.Count.Op {
	case "<":
		return CountLessThan(value)
	case ">":
		return CountGreaterThan(value)
	default:
		return CountEquals(value)
	}
}

// GroupFromWhen builds an enabled group from a compact expression and a
// template.
func GroupFromWhen(expr, template string) (Group, error) {
	conds, err := ParseWhen(expr)
	if err != nil {
		return Group{}, err
	}
	return Group{Conditions: conds, Enabled: true, Template: template}, nil
}
