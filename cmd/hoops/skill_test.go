// ABOUTME: Tests for the install-skill command.
// ABOUTME: Validates the embedded skill content and installation layout.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestSkillEmbedded verifies the skill file is embedded and carries the
// expected content markers.
func TestSkillEmbedded(t *testing.T) {
	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		t.Fatalf("Failed to read embedded skill: %v", err)
	}

	text := string(content)
	for _, marker := range []string{
		"name: hoops",
		"hoops player add",
		"hoops game add",
		"--confirm DELETE",
		"hoops export csv",
	} {
		if !strings.Contains(text, marker) {
			t.Errorf("embedded skill missing %q", marker)
		}
	}
}

// TestSkillInstallLayout verifies the directory layout installSkill
// produces, writing the embedded content the way the command does.
func TestSkillInstallLayout(t *testing.T) {
	tmpHome := t.TempDir()

	skillDir := filepath.Join(tmpHome, ".claude", "skills", "hoops")
	skillPath := filepath.Join(skillDir, "SKILL.md")

	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		t.Fatalf("Failed to read embedded skill: %v", err)
	}

	if err := os.MkdirAll(skillDir, 0750); err != nil {
		t.Fatalf("Failed to create skill directory: %v", err)
	}
	if err := os.WriteFile(skillPath, content, 0600); err != nil {
		t.Fatalf("Failed to write skill file: %v", err)
	}

	info, err := os.Stat(skillDir)
	if err != nil {
		t.Fatalf("Skill directory not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("Expected skill path to be a directory")
	}

	written, err := os.ReadFile(skillPath)
	if err != nil {
		t.Fatalf("Skill file not readable: %v", err)
	}
	if string(written) != string(content) {
		t.Error("Installed skill differs from embedded content")
	}
}
