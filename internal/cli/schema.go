package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/zoobzio/dbml"
	"gopkg.in/yaml.v3"

	"github.com/zoobzio/stmtql"
)

// SchemaFile is the on-disk table list:
//
//	name: shop
//	tables:
//	  - name: users
//	    columns:
//	      - {name: id, type: bigint}
type SchemaFile struct {
	Name   string        `yaml:"name"`
	Tables []SchemaTable `yaml:"tables"`
}

// SchemaTable is one table in a SchemaFile.
type SchemaTable struct {
	Name    string         `yaml:"name"`
	Columns []SchemaColumn `yaml:"columns"`
}

// SchemaColumn is one column in a SchemaTable.
type SchemaColumn struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// LoadSchema reads a schema file and builds the validator it describes.
func LoadSchema(path string) (*stmtql.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}
	return ParseSchema(data)
}

// ParseSchema decodes a YAML or JSON schema file.
func ParseSchema(data []byte) (*stmtql.Schema, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file SchemaFile
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding schema: %w", err)
	}
	if len(file.Tables) == 0 {
		return nil, fmt.Errorf("schema declares no tables")
	}

	name := file.Name
	if name == "" {
		name = "stmtql"
	}
	project := dbml.NewProject(name)
	for _, t := range file.Tables {
		if t.Name == "" {
			return nil, fmt.Errorf("schema table without a name")
		}
		table := dbml.NewTable(t.Name)
		for _, c := range t.Columns {
			typ := c.Type
			if typ == "" {
				typ = "text"
			}
			table.AddColumn(dbml.NewColumn(c.Name, typ))
		}
		project.AddTable(table)
	}

	return stmtql.NewFromDBML(project)
}
