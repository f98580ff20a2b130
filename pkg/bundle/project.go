package bundle

import (
	"encoding/json"
)

// ConfigFileName is the reserved configuration entry every MakerStudio
// project carries in its file map.
const ConfigFileName = "project.json"

// DefaultEditor is used when neither the project configuration nor the
// payload metadata declares an editor.
const DefaultEditor = "blocks"

// ProjectConfig is the parsed form of the reserved project.json entry.
type ProjectConfig struct {
	Name            string            `mapstructure:"name"`
	PreferredEditor string            `mapstructure:"preferredEditor"`
	Target          string            `mapstructure:"target"`
	TargetVersion   string            `mapstructure:"targetVersion"`
	Dependencies    map[string]string `mapstructure:"dependencies"`
}

// targetVersions is the nested version block some exporters write into
// the payload meta instead of flat fields.
type targetVersions struct {
	Target   string `mapstructure:"target"`
	TargetID string `mapstructure:"targetId"`
}

// Project is a fully assembled import candidate: the file map plus the
// identity fields resolved through their fallback chains.
type Project struct {
	Name          string
	Editor        string
	Target        string
	TargetVersion string
	Files         map[string]string
	Config        ProjectConfig
	Meta          map[string]any
}

// BuildProject assembles an import candidate from a classified payload.
// The reserved project.json entry is required; the editor, target and
// version fields fall back from the payload meta to the configuration:
//
//	Name:          config name, meta name, "Untitled"
//	Editor:        config preferredEditor, meta editor, DefaultEditor
//	Target:        meta target, meta targetVersions.targetId, config target
//	TargetVersion: meta targetVersion, meta targetVersions.target, config targetVersion
func BuildProject(p *Payload) (*Project, error) {
	rawCfg, ok := p.Files[ConfigFileName]
	if !ok {
		return nil, &FormatError{Stage: StageConfig, Reason: "missing " + ConfigFileName}
	}

	var cfgMap map[string]any
	if err := json.Unmarshal([]byte(rawCfg), &cfgMap); err != nil {
		return nil, &FormatError{Stage: StageConfig, Reason: ConfigFileName + " is not valid JSON", Err: err}
	}
	var cfg ProjectConfig
	if err := decodeMap(cfgMap, &cfg); err != nil {
		return nil, &FormatError{Stage: StageConfig, Reason: "unreadable " + ConfigFileName, Err: err}
	}

	var versions targetVersions
	if nested, ok := p.Meta["targetVersions"].(map[string]any); ok {
		// Best effort: a malformed block only loses the fallback.
		_ = decodeMap(nested, &versions)
	}

	return &Project{
		Name:          firstNonEmpty(cfg.Name, getStringValue(p.Meta, "name"), "Untitled"),
		Editor:        firstNonEmpty(cfg.PreferredEditor, getStringValue(p.Meta, "editor"), DefaultEditor),
		Target:        firstNonEmpty(getStringValue(p.Meta, "target"), versions.TargetID, cfg.Target),
		TargetVersion: firstNonEmpty(getStringValue(p.Meta, "targetVersion"), versions.Target, cfg.TargetVersion),
		Files:         p.Files,
		Config:        cfg,
		Meta:          p.Meta,
	}, nil
}
