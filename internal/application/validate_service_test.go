package application_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openkraft/docguard/internal/adapters/outbound/config"
	"github.com/openkraft/docguard/internal/adapters/outbound/markdown"
	"github.com/openkraft/docguard/internal/adapters/outbound/textfile"
	"github.com/openkraft/docguard/internal/application"
	"github.com/openkraft/docguard/internal/domain"
)

const evaluationDoc = `# Evaluación

## 🔍 Búsqueda Exhaustiva
Revisamos soluciones open source y la comunidad alrededor.

## **Compatibilidad Hacia Atrás**
Sin cambios de API.

## Análisis de Riesgos
Seguridad y escalabilidad cubiertas para multi-tenant.

## Validación de Suposiciones
Confirmado con el equipo.
`

func newChecklistService() *application.ChecklistService {
	return application.NewChecklistService(testEnv(), config.New(), markdown.New(), textfile.New())
}

func TestChecklistCheck_BuiltinEvaluation(t *testing.T) {
	root := writeTree(t, map[string]string{"docs/EVALUATION.md": evaluationDoc})

	result, err := newChecklistService().Check(root, "docs/EVALUATION.md", "evaluation")
	require.NoError(t, err)

	assert.True(t, result.Passed)
	assert.Empty(t, result.MissingSections)
	assert.Empty(t, result.MissingKeywords)
	assert.Equal(t, 100.0, result.Score)
	assert.Equal(t, "docs/EVALUATION.md", result.File)
}

func TestChecklistCheck_ConfiguredChecklist(t *testing.T) {
	root := writeTree(t, map[string]string{
		".docguard.yaml": "checklists:\n  - name: rfc\n    sections: [Motivation, Design]\n    keywords: [rollout]\n    min_score: 50\n",
		"RFC.md":         "# RFC\n\n## Motivation\nWhy.\n",
	})

	result, err := newChecklistService().Check(root, "RFC.md", "rfc")
	require.NoError(t, err)

	assert.False(t, result.Passed)
	assert.Equal(t, []string{"Motivation"}, result.FoundSections)
	assert.Equal(t, []string{"Design"}, result.MissingSections)
	assert.Equal(t, []string{"rollout"}, result.MissingKeywords)
	assert.InDelta(t, 33.33, result.Score, 0.001)
}

func TestChecklistCheck_UnknownChecklist(t *testing.T) {
	root := writeTree(t, map[string]string{"A.md": "# A\n"})

	_, err := newChecklistService().Check(root, "A.md", "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownChecklist)
	assert.Contains(t, err.Error(), "evaluation")
}

func TestChecklistCheck_MissingFile(t *testing.T) {
	_, err := newChecklistService().Check(t.TempDir(), "MISSING.md", "evaluation")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading MISSING.md")
}

func TestChecklists(t *testing.T) {
	root := writeTree(t, map[string]string{
		".docguard.yaml": "checklists:\n  - name: rfc\n    sections: [Intro]\n    min_score: 10\n",
	})

	names, err := newChecklistService().Checklists(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"rfc", "evaluation"}, names)
}

func TestProjectFile(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		file string
		want string
		ok   bool
	}{
		{"docs/EVALUATION.md", "docs/EVALUATION.md", true},
		{"docs/../README.md", "README.md", true},
		{filepath.Join(root, "docs", "A.md"), "docs/A.md", true},
		{"../outside.md", "", false},
		{"docs/../../etc/passwd", "", false},
		{"/etc/passwd", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			got, err := application.ProjectFile(root, tt.file)
			if !tt.ok {
				assert.ErrorIs(t, err, domain.ErrOutsideProject)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
