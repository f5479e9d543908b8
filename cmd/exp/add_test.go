package main

import (
	"testing"

	"github.com/sunnybak/exp/internal/config"
)

func TestProvisionOptions(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.ParentRepo = "experiments"
	cfg.DefaultBranch = "main"
	cfg.CommitMessage = "add {name} submodule"

	opts := provisionOptions(&cfg, "/tmp/experiments", false)

	if opts.Scaffold {
		t.Error("Scaffold = true, want false")
	}
	if opts.WorkDir != "/tmp/experiments" {
		t.Errorf("WorkDir = %q", opts.WorkDir)
	}
	if opts.ParentRepo != "experiments" || opts.Branch != "main" {
		t.Errorf("opts = %+v", opts)
	}
	if opts.CommitMessage != "add {name} submodule" {
		t.Errorf("CommitMessage = %q", opts.CommitMessage)
	}
	if opts.CreateRemote != nil {
		t.Error("CreateRemote set without scaffolding")
	}
}

func TestUIPrompterAssumeYes(t *testing.T) {
	t.Parallel()

	ok, err := uiPrompter{assumeYes: true}.Confirm("proceed?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("assumeYes prompter declined")
	}
}
