// Package document decodes YAML or JSON statement documents and builds the
// matching stmtql statement.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zoobzio/stmtql"
)

// Statement kinds accepted in the kind field.
const (
	KindSelect = "select"
	KindDelete = "delete"
	KindUpdate = "update"
	KindInsert = "insert"
	KindUpsert = "upsert"
)

// ErrUnknownKind is returned for a document whose kind is not supported.
var ErrUnknownKind = errors.New("unknown statement kind")

// Document is one statement in declarative form.
type Document struct {
	Kind     string       `yaml:"kind"`
	Table    string       `yaml:"table,omitempty"`
	Distinct bool         `yaml:"distinct,omitempty"`
	Columns  []Ref        `yaml:"columns,omitempty"`
	From     []Ref        `yaml:"from,omitempty"`
	Joins    []Join       `yaml:"joins,omitempty"`
	Where    []Predicate  `yaml:"where,omitempty"`
	GroupBy  []string     `yaml:"group_by,omitempty"`
	Having   []Predicate  `yaml:"having,omitempty"`
	OrderBy  []Order      `yaml:"order_by,omitempty"`
	Limit    *int         `yaml:"limit,omitempty"`
	Offset   *int         `yaml:"offset,omitempty"`
	Set      []Assignment `yaml:"set,omitempty"`
	Values   []Assignment `yaml:"values,omitempty"`
	Conflict []string     `yaml:"conflict,omitempty"`
	Combine  []Combine    `yaml:"combine,omitempty"`
}

// Ref is a column or table with an optional alias.
type Ref struct {
	Name  string `yaml:"name"`
	Alias string `yaml:"alias,omitempty"`
}

// Join is a JOIN entry. Type defaults to INNER.
type Join struct {
	Table string      `yaml:"table"`
	Alias string      `yaml:"alias,omitempty"`
	Type  string      `yaml:"type,omitempty"`
	On    []Predicate `yaml:"on,omitempty"`
	Using []string    `yaml:"using,omitempty"`
}

// Predicate is a block marker when Block is set. Otherwise it compares
// Column with Ref when Ref is set, or with Value.
type Predicate struct {
	Block     string  `yaml:"block,omitempty"`
	Connector string  `yaml:"connector,omitempty"`
	Column    string  `yaml:"column,omitempty"`
	Op        string  `yaml:"op,omitempty"`
	Value     Literal `yaml:"value,omitempty"`
	Ref       string  `yaml:"ref,omitempty"`
}

// Order is an ORDER BY key.
type Order struct {
	Column    string `yaml:"column"`
	Direction string `yaml:"direction,omitempty"`
	Nulls     string `yaml:"nulls,omitempty"`
}

// Assignment targets Column with Value, or with another column when Ref is
// set. Ref is only honored in set lists.
type Assignment struct {
	Column string  `yaml:"column"`
	Value  Literal `yaml:"value,omitempty"`
	Ref    string  `yaml:"ref,omitempty"`
}

// Combine attaches another select document with a set operator.
type Combine struct {
	Operator  string   `yaml:"operator"`
	Statement Document `yaml:"statement"`
}

// Parse decodes a YAML or JSON document. Unknown fields are rejected.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("decoding statement document: empty document")
		}
		return nil, fmt.Errorf("decoding statement document: %w", err)
	}
	doc.Kind = strings.ToLower(strings.TrimSpace(doc.Kind))
	return &doc, nil
}

// Build constructs the statement the document describes. Errors from the
// builder are returned as-is so callers can match them with errors.Is.
func Build(doc *Document, opts ...stmtql.Option) (stmtql.Statement, error) {
	var (
		stmt stmtql.Statement
		err  error
	)
	switch doc.Kind {
	case KindSelect:
		stmt, err = buildSelect(doc, opts)
	case KindDelete:
		stmt, err = buildDelete(doc, opts)
	case KindUpdate:
		stmt, err = buildUpdate(doc, opts)
	case KindInsert:
		stmt, err = buildInsert(doc, opts)
	case KindUpsert:
		stmt, err = buildUpsert(doc, opts)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownKind, doc.Kind)
	}
	if err != nil {
		return nil, err
	}
	return stmt, nil
}

// Render parses data and renders the statement it describes.
func Render(data []byte, opts ...stmtql.Option) (string, error) {
	doc, err := Parse(data)
	if err != nil {
		return "", err
	}
	stmt, err := Build(doc, opts...)
	if err != nil {
		return "", err
	}
	return stmt.Statement()
}

// predicateTarget is the set of calls a predicate list can be fed through.
type predicateTarget struct {
	block  func(stmtql.Brace, ...stmtql.Connector)
	value  func(string, stmtql.Operator, any, ...stmtql.Connector)
	column func(string, stmtql.Operator, string, ...stmtql.Connector)
}

func (t predicateTarget) feed(preds []Predicate) {
	for _, p := range preds {
		var conn []stmtql.Connector
		if p.Connector != "" {
			conn = append(conn, stmtql.Connector(p.Connector))
		}
		switch {
		case p.Block != "":
			t.block(stmtql.Brace(p.Block), conn...)
		case p.Ref != "":
			t.column(p.Column, operator(p.Op), p.Ref, conn...)
		default:
			t.value(p.Column, operator(p.Op), p.Value.Any(), conn...)
		}
	}
}

func operator(op string) stmtql.Operator {
	if op == "" {
		return stmtql.EQ
	}
	return stmtql.Operator(op)
}

// Literal is a predicate or assignment value. Scalars follow YAML 1.2 core
// rules, so only true and false are booleans and yes, no, on and off stay
// strings. Integers keep their full precision; numbers that fit neither
// int64, uint64 nor float64 fail with stmtql.ErrInvalidValue.
type Literal struct {
	value any
}

// NewLiteral wraps a Go value for use in a Document built in code.
func NewLiteral(v any) Literal {
	return Literal{value: v}
}

// Any returns the decoded value: nil, bool, int64, uint64, float64, string,
// time.Time or a []any of those.
func (l Literal) Any() any {
	return l.value
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *Literal) UnmarshalYAML(node *yaml.Node) error {
	v, err := literalOf(node)
	if err != nil {
		return err
	}
	l.value = v
	return nil
}

var numberRe = regexp.MustCompile(`^[-+]?(?:[0-9][0-9_]*(?:\.[0-9_]*)?|\.[0-9]+)(?:[eE][-+]?[0-9]+)?$`)

func literalOf(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.AliasNode:
		return literalOf(node.Alias)
	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			v, err := literalOf(item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.ScalarNode:
	default:
		return nil, fmt.Errorf("%w: line %d: value must be a scalar or a list", stmtql.ErrInvalidValue, node.Line)
	}

	switch node.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		err := node.Decode(&b)
		return b, err
	case "!!int":
		var i int64
		if err := node.Decode(&i); err == nil {
			return i, nil
		}
		var u uint64
		if err := node.Decode(&u); err == nil {
			return u, nil
		}
		return nil, outOfRange(node)
	case "!!float":
		if !strings.ContainsAny(node.Value, ".eE") && numberRe.MatchString(node.Value) {
			// Integer text too large for uint64.
			return nil, outOfRange(node)
		}
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, outOfRange(node)
		}
		return f, nil
	case "!!timestamp":
		var ts time.Time
		err := node.Decode(&ts)
		return ts, err
	default:
		// Plain numbers outside the float64 range resolve as strings.
		if node.Style == 0 && numberRe.MatchString(node.Value) {
			return nil, outOfRange(node)
		}
		return node.Value, nil
	}
}

func outOfRange(node *yaml.Node) error {
	return fmt.Errorf("%w: line %d: number %s is out of range", stmtql.ErrInvalidValue, node.Line, node.Value)
}

func buildSelect(doc *Document, opts []stmtql.Option) (*stmtql.SelectStatement, error) {
	s := stmtql.NewSelect(opts...).Distinct(doc.Distinct)
	for _, c := range doc.Columns {
		s.Column(c.Name, aliasOf(c.Alias)...)
	}
	for _, f := range doc.From {
		s.From(f.Name, aliasOf(f.Alias)...)
	}
	for _, j := range doc.Joins {
		s.JoinWith(stmtql.JoinType(j.Type), j.Table, aliasOf(j.Alias)...)
		predicateTarget{
			block:  func(b stmtql.Brace, c ...stmtql.Connector) { s.JoinOnBlock(b, c...) },
			value:  func(col string, op stmtql.Operator, v any, c ...stmtql.Connector) { s.JoinOnValue(col, op, v, c...) },
			column: func(l string, op stmtql.Operator, r string, c ...stmtql.Connector) { s.JoinOn(l, op, r, c...) },
		}.feed(j.On)
		for _, u := range j.Using {
			s.JoinUsing(u)
		}
	}
	predicateTarget{
		block:  func(b stmtql.Brace, c ...stmtql.Connector) { s.WhereBlock(b, c...) },
		value:  func(col string, op stmtql.Operator, v any, c ...stmtql.Connector) { s.Where(col, op, v, c...) },
		column: func(l string, op stmtql.Operator, r string, c ...stmtql.Connector) { s.WhereColumn(l, op, r, c...) },
	}.feed(doc.Where)
	for _, g := range doc.GroupBy {
		s.GroupBy(g)
	}
	predicateTarget{
		block:  func(b stmtql.Brace, c ...stmtql.Connector) { s.HavingBlock(b, c...) },
		value:  func(col string, op stmtql.Operator, v any, c ...stmtql.Connector) { s.Having(col, op, v, c...) },
		column: func(l string, op stmtql.Operator, r string, c ...stmtql.Connector) { s.HavingColumn(l, op, r, c...) },
	}.feed(doc.Having)
	for _, o := range doc.OrderBy {
		s.OrderByNulls(o.Column, stmtql.Direction(o.Direction), stmtql.NullsOrdering(o.Nulls))
	}
	if doc.Limit != nil {
		s.Limit(*doc.Limit)
	}
	if doc.Offset != nil {
		s.Offset(*doc.Offset)
	}
	for i := range doc.Combine {
		c := &doc.Combine[i]
		if c.Statement.Kind == "" {
			c.Statement.Kind = KindSelect
		}
		if c.Statement.Kind != KindSelect {
			return nil, fmt.Errorf("combine %d: %w: %q", i, ErrUnknownKind, c.Statement.Kind)
		}
		other, err := buildSelect(&c.Statement, opts)
		if err != nil {
			return nil, fmt.Errorf("combine %d: %w", i, err)
		}
		s.CombineWith(other, stmtql.SetOperation(c.Operator))
	}
	return s, s.Err()
}

func buildDelete(doc *Document, opts []stmtql.Option) (*stmtql.DeleteStatement, error) {
	s := stmtql.NewDelete(opts...)
	if doc.Table != "" {
		s.Table(doc.Table)
	}
	predicateTarget{
		block:  func(b stmtql.Brace, c ...stmtql.Connector) { s.WhereBlock(b, c...) },
		value:  func(col string, op stmtql.Operator, v any, c ...stmtql.Connector) { s.Where(col, op, v, c...) },
		column: func(l string, op stmtql.Operator, r string, c ...stmtql.Connector) { s.WhereColumn(l, op, r, c...) },
	}.feed(doc.Where)
	applyTail(s, doc)
	return s, s.Err()
}

func buildUpdate(doc *Document, opts []stmtql.Option) (*stmtql.UpdateStatement, error) {
	s := stmtql.NewUpdate(opts...)
	if doc.Table != "" {
		s.Table(doc.Table)
	}
	for _, a := range doc.Set {
		if a.Ref != "" {
			s.SetColumn(a.Column, a.Ref)
		} else {
			s.Set(a.Column, a.Value.Any())
		}
	}
	predicateTarget{
		block:  func(b stmtql.Brace, c ...stmtql.Connector) { s.WhereBlock(b, c...) },
		value:  func(col string, op stmtql.Operator, v any, c ...stmtql.Connector) { s.Where(col, op, v, c...) },
		column: func(l string, op stmtql.Operator, r string, c ...stmtql.Connector) { s.WhereColumn(l, op, r, c...) },
	}.feed(doc.Where)
	applyTail(s, doc)
	return s, s.Err()
}

// applyTail feeds ORDER BY and pagination to a filtered statement.
func applyTail[S stmtql.DataManipulationCommand[S]](s S, doc *Document) {
	for _, o := range doc.OrderBy {
		s.OrderByNulls(o.Column, stmtql.Direction(o.Direction), stmtql.NullsOrdering(o.Nulls))
	}
	if doc.Limit != nil {
		s.Limit(*doc.Limit)
	}
	if doc.Offset != nil {
		s.Offset(*doc.Offset)
	}
}

func buildInsert(doc *Document, opts []stmtql.Option) (*stmtql.InsertStatement, error) {
	s := stmtql.NewInsert(opts...)
	if doc.Table != "" {
		s.Into(doc.Table)
	}
	for _, a := range doc.Values {
		s.Column(a.Column, a.Value.Any())
	}
	return s, s.Err()
}

func buildUpsert(doc *Document, opts []stmtql.Option) (*stmtql.UpsertStatement, error) {
	s := stmtql.NewUpsert(opts...)
	if doc.Table != "" {
		s.Into(doc.Table)
	}
	for _, a := range doc.Values {
		s.Column(a.Column, a.Value.Any())
	}
	if len(doc.Conflict) > 0 {
		s.Conflict(doc.Conflict...)
	}
	return s, s.Err()
}

func aliasOf(alias string) []string {
	if alias == "" {
		return nil
	}
	return []string{alias}
}
