package fancy_test

import (
	"testing"

	"github.com/liatrio/liatrio-demo-api/internal/fancy"
	"github.com/stretchr/testify/assert"
)

func TestTree(t *testing.T) {
	tr := fancy.Tree()
	assert.NotNil(t, tr)

	tr.Root("Root Node")
	section := fancy.BranchNode("Section", "")
	section.Child("Leaf")
	tr.Child(section)

	out := tr.String()
	assert.Contains(t, out, "Root Node")
	assert.Contains(t, out, "Section")
	assert.Contains(t, out, "Leaf")
}

func TestBranchNode(t *testing.T) {
	node := fancy.BranchNode("Routes", "(6)")
	out := node.String()
	assert.Contains(t, out, "Routes")
	assert.Contains(t, out, "(6)")
}

func TestKeyValue(t *testing.T) {
	out := fancy.KeyValue("Port", 8080)
	assert.Contains(t, out, "Port:")
	assert.Contains(t, out, "8080")
}

func TestStylesKeepText(t *testing.T) {
	for _, s := range []string{
		fancy.RootStyle.Render("Routes"),
		fancy.RouteStyle.Render("GET /health"),
		fancy.ErrorStyle.Render("Error:"),
	} {
		assert.NotEmpty(t, s)
	}
	assert.Contains(t, fancy.RouteStyle.Render("GET /health"), "GET /health")
}
