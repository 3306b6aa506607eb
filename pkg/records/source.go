package records

import (
	"os"
	"path/filepath"

	"campus-chatbot-be/internal/entity"
	"campus-chatbot-be/internal/pkg/logger"
)

// Source loads the record set for one department. Implementations never
// fail for a missing backing file: no source means no records.
type Source interface {
	Load(department entity.Department) []Record
}

type fileSpec struct {
	name   string
	schema Schema
}

// departmentFiles maps each department to its backing files. The CSIT
// student roster lives in an Excel export; every other file is CSV.
var departmentFiles = map[entity.Department][]fileSpec{
	entity.DepartmentBscCsit: {
		{name: "bsc_csit_data.csv", schema: SchemaTeacher},
		{name: "batch2078.xlsx", schema: SchemaStudent},
	},
	entity.DepartmentBit: {
		{name: "bit_data.csv", schema: SchemaTeacher},
		{name: "bit_students.xlsx", schema: SchemaStudent},
	},
	entity.DepartmentBca: {
		{name: "bca_data.csv", schema: SchemaTeacher},
		{name: "bca_students.xlsx", schema: SchemaStudent},
	},
}

// FileSource reads department files from a data directory on every call.
// There is deliberately no in-process cache: lookups always see the
// current contents of the directory.
type FileSource struct {
	dir    string
	logger logger.ILogger
}

func NewFileSource(dir string, log logger.ILogger) *FileSource {
	return &FileSource{dir: dir, logger: log}
}

func (s *FileSource) Load(department entity.Department) []Record {
	specs, ok := departmentFiles[department]
	if !ok {
		return nil
	}

	var out []Record
	for _, spec := range specs {
		path := filepath.Join(s.dir, spec.name)
		if _, err := os.Stat(path); err != nil {
			// Missing source file is data absence, not an error.
			continue
		}

		var (
			recs []Record
			err  error
		)
		if filepath.Ext(spec.name) == ".xlsx" {
			recs, err = LoadXLSX(path, spec.schema, department)
		} else {
			recs, err = LoadCSV(path, spec.schema, department)
		}
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("records", "failed to load department file", map[string]interface{}{
					"path":  path,
					"error": err.Error(),
				})
			}
			continue
		}
		out = append(out, recs...)
	}
	return out
}
