package bundle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildProject(t *testing.T) {
	t.Run("config fields win", func(t *testing.T) {
		p := &Payload{
			Kind: KindExport,
			Files: map[string]string{
				ConfigFileName: `{"name":"Rover","preferredEditor":"typescript","target":"pocketbit","targetVersion":"4.2.1","dependencies":{"core":"*"}}`,
				"main.ts":      "basic.showIcon(0)",
			},
			Meta: map[string]any{"name": "Something else", "editor": "blocks"},
		}

		prj, err := BuildProject(p)
		require.NoError(t, err)
		assert.Equal(t, "Rover", prj.Name)
		assert.Equal(t, "typescript", prj.Editor)
		assert.Equal(t, "pocketbit", prj.Target)
		assert.Equal(t, "4.2.1", prj.TargetVersion)
		assert.Equal(t, map[string]string{"core": "*"}, prj.Config.Dependencies)
		assert.Equal(t, p.Files, prj.Files)
	})

	t.Run("meta fallbacks", func(t *testing.T) {
		p := &Payload{
			Kind:  KindWorkspace,
			Files: map[string]string{ConfigFileName: `{}`},
			Meta: map[string]any{
				"name":          "Lights",
				"editor":        "blocks",
				"target":        "pocketbit",
				"targetVersion": "3.0.0",
			},
		}

		prj, err := BuildProject(p)
		require.NoError(t, err)
		assert.Equal(t, "Lights", prj.Name)
		assert.Equal(t, "blocks", prj.Editor)
		assert.Equal(t, "pocketbit", prj.Target)
		assert.Equal(t, "3.0.0", prj.TargetVersion)
	})

	t.Run("nested target versions", func(t *testing.T) {
		p := &Payload{
			Kind:  KindExport,
			Files: map[string]string{ConfigFileName: `{}`},
			Meta: map[string]any{
				"targetVersions": map[string]any{
					"target":   "2.8.5",
					"targetId": "pocketbit",
				},
			},
		}

		prj, err := BuildProject(p)
		require.NoError(t, err)
		assert.Equal(t, "pocketbit", prj.Target)
		assert.Equal(t, "2.8.5", prj.TargetVersion)
	})

	t.Run("flat meta beats nested block", func(t *testing.T) {
		p := &Payload{
			Kind:  KindExport,
			Files: map[string]string{ConfigFileName: `{}`},
			Meta: map[string]any{
				"targetVersion":  "9.9.9",
				"targetVersions": map[string]any{"target": "2.8.5"},
			},
		}

		prj, err := BuildProject(p)
		require.NoError(t, err)
		assert.Equal(t, "9.9.9", prj.TargetVersion)
	})

	t.Run("defaults", func(t *testing.T) {
		p := &Payload{
			Kind:  KindWorkspace,
			Files: map[string]string{ConfigFileName: `{}`},
		}

		prj, err := BuildProject(p)
		require.NoError(t, err)
		assert.Equal(t, "Untitled", prj.Name)
		assert.Equal(t, DefaultEditor, prj.Editor)
		assert.Empty(t, prj.Target)
		assert.Empty(t, prj.TargetVersion)
	})

	t.Run("missing config entry", func(t *testing.T) {
		p := &Payload{
			Kind:  KindWorkspace,
			Files: map[string]string{"main.blocks": "<xml/>"},
		}

		_, err := BuildProject(p)
		require.Error(t, err)
		assert.True(t, IsInvalidFormat(err))
		assert.Contains(t, err.Error(), ConfigFileName)
	})

	t.Run("config entry not json", func(t *testing.T) {
		p := &Payload{
			Kind:  KindWorkspace,
			Files: map[string]string{ConfigFileName: `not json`},
		}

		_, err := BuildProject(p)
		require.Error(t, err)
		assert.True(t, IsInvalidFormat(err))
	})

	t.Run("numeric config values tolerated", func(t *testing.T) {
		// JSON unmarshaling hands numbers to the decoder as float64.
		p := &Payload{
			Kind:  KindWorkspace,
			Files: map[string]string{ConfigFileName: `{"name":"Counter","targetVersion":4}`},
		}

		prj, err := BuildProject(p)
		require.NoError(t, err)
		assert.Equal(t, "4", prj.TargetVersion)
	})
}
