package main

import (
	"encoding/base64"
	"io"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/simonhull/id3tag"
)

type tomlFrame struct {
	ID     string         `toml:"id"`
	Fields map[string]any `toml:"fields"`
}

type tomlFile struct {
	Path     string      `toml:"path"`
	Versions string      `toml:"versions"`
	Frames   []tomlFrame `toml:"frame"`
}

type tomlDump struct {
	Files []tomlFile `toml:"file"`
}

// writeTOML prints tags as [[file]] tables, one [[file.frame]] per frame.
// Binary fields are base64 encoded.
func writeTOML(w io.Writer, tags []*id3tag.Tag) error {
	var dump tomlDump
	for _, t := range tags {
		file := tomlFile{Path: t.Path(), Versions: foundVersions(t).String()}
		for f := range t.All() {
			fields := make(map[string]any)
			for _, id := range f.Fields() {
				v, _ := f.Get(id)
				if b, ok := v.([]byte); ok {
					v = base64.StdEncoding.EncodeToString(b)
				}
				fields[id] = v
			}
			file.Frames = append(file.Frames, tomlFrame{ID: f.ID(), Fields: fields})
		}
		dump.Files = append(dump.Files, file)
	}

	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return enc.Encode(dump)
}
