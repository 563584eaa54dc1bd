package stmtql

import (
	"fmt"
	"strings"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/stmtql/internal/render"
)

// Schema restricts table and column references to those declared in a DBML
// project. Pass it to a statement with WithSchema.
type Schema struct {
	project *dbml.Project
	// Internal indexes for fast validation
	tables  map[string]*dbml.Table
	columns map[string]map[string]*dbml.Column // table -> column -> definition
}

// NewFromDBML indexes the tables and columns of a DBML project.
func NewFromDBML(project *dbml.Project) (*Schema, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	s := &Schema{
		project: project,
		tables:  make(map[string]*dbml.Table),
		columns: make(map[string]map[string]*dbml.Column),
	}
	for _, table := range project.Tables {
		s.tables[table.Name] = table
		s.columns[table.Name] = make(map[string]*dbml.Column)
		for _, col := range table.Columns {
			s.columns[table.Name][col.Name] = col
		}
	}
	return s, nil
}

// Project returns the underlying DBML project.
func (s *Schema) Project() *dbml.Project {
	return s.project
}

// HasTable reports whether name is declared.
func (s *Schema) HasTable(name string) bool {
	_, ok := s.tables[name]
	return ok
}

// HasColumn reports whether any table declares column.
func (s *Schema) HasColumn(column string) bool {
	for _, cols := range s.columns {
		if _, ok := cols[column]; ok {
			return true
		}
	}
	return false
}

// ValidateTable implements Validator. Schema prefixes are ignored.
func (s *Schema) ValidateTable(name string) error {
	if err := (render.SyntaxValidator{}).ValidateTable(name); err != nil {
		return err
	}
	table := unquote(lastSegment(name))
	if !s.HasTable(table) {
		return fmt.Errorf("%w: table %q not found in schema", ErrInvalidIdentifier, name)
	}
	return nil
}

// ValidateColumn implements Validator. Qualifiers are ignored and only the
// column name is looked up; function arguments are checked one by one.
func (s *Schema) ValidateColumn(ref string) error {
	if err := (render.SyntaxValidator{}).ValidateColumn(ref); err != nil {
		return err
	}
	return s.lookupColumn(ref)
}

func (s *Schema) lookupColumn(ref string) error {
	ref = strings.TrimSpace(ref)
	if open := indexUnquoted(ref, '('); open != -1 {
		args := strings.TrimSpace(ref[open+1 : strings.LastIndexByte(ref, ')')])
		if len(args) > 9 && strings.EqualFold(args[:9], "DISTINCT ") {
			args = strings.TrimSpace(args[9:])
		}
		if args == "" {
			return nil
		}
		for _, arg := range splitUnquoted(args, ',') {
			if err := s.lookupColumn(arg); err != nil {
				return err
			}
		}
		return nil
	}

	name := unquote(lastSegment(ref))
	if name == "*" {
		return nil
	}
	if !s.HasColumn(name) {
		return fmt.Errorf("%w: column %q not found in schema", ErrInvalidIdentifier, ref)
	}
	return nil
}

// eachUnquoted calls fn with every byte of ref that is outside a quoted part.
func eachUnquoted(ref string, fn func(i int, c byte)) {
	quote := byte(0)
	for i := 0; i < len(ref); i++ {
		c := ref[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '`':
			quote = c
		case c == '[':
			quote = ']'
		default:
			fn(i, c)
		}
	}
}

func indexUnquoted(ref string, sep byte) int {
	at := -1
	eachUnquoted(ref, func(i int, c byte) {
		if c == sep && at == -1 {
			at = i
		}
	})
	return at
}

func splitUnquoted(ref string, sep byte) []string {
	var parts []string
	start := 0
	eachUnquoted(ref, func(i int, c byte) {
		if c == sep {
			parts = append(parts, ref[start:i])
			start = i + 1
		}
	})
	return append(parts, ref[start:])
}

// lastSegment returns the part after the final dot outside quotes.
func lastSegment(ref string) string {
	cut := -1
	eachUnquoted(ref, func(i int, c byte) {
		if c == '.' {
			cut = i
		}
	})
	return ref[cut+1:]
}

func unquote(name string) string {
	if len(name) >= 2 {
		switch {
		case name[0] == '"' && name[len(name)-1] == '"',
			name[0] == '`' && name[len(name)-1] == '`',
			name[0] == '[' && name[len(name)-1] == ']':
			return name[1 : len(name)-1]
		}
	}
	return name
}
