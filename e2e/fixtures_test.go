//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
)

const productsFixture = `{
  "Flooring": {
    "overview": "Seamless industrial floors",
    "services": {
      "Epoxy Flooring": {"desc": "Chemical resistant resin floor"},
      "PU Flooring": {"desc": "Flexible polyurethane screed"},
      "Anti Static Floor": {"desc": "ESD safe for labs"}
    }
  },
  "Coatings": {
    "overview": "Protective paints",
    "services": {
      "Anti-Corrosive": {"desc": "Steel protection"}
    }
  }
}`

const photosFixture = `[
  {"name": "Warehouse", "desc": "Grey epoxy", "price": 1250, "category": "Epoxy"},
  {"name": "Kitchen", "desc": "PU screed", "price": 85.5, "category": "PU"}
]`

const projectsFixture = `{
  "projects": [
    {"title": "Pharma plant", "desc": "ESD flooring", "place": "Chennai", "category": "Industrial"}
  ]
}`

// CreateTestWorkspace creates a temporary directory holding the three catalogs
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir, err := os.MkdirTemp("", "showroom-test-*")
	if err != nil {
		return "", err
	}
	tf.workspace = tmpDir

	for name, content := range map[string]string{
		"products.json": productsFixture,
		"photos.json":   photosFixture,
		"projects.json": projectsFixture,
	} {
		if err := tf.WriteCatalog(name, content); err != nil {
			return "", err
		}
	}
	return tmpDir, nil
}

// WriteCatalog replaces a catalog file in the workspace
func (tf *TUITestFramework) WriteCatalog(name, content string) error {
	return os.WriteFile(filepath.Join(tf.workspace, name), []byte(content), 0644)
}
