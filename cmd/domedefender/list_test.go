package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestRunListShowsPlayfields(t *testing.T) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	if err := runList(cmd, nil); err != nil {
		t.Fatalf("runList() failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{"domedefender", "Dome Defender", "sandbox", "800x600"} {
		if !strings.Contains(got, want) {
			t.Errorf("runList() output missing %q:\n%s", want, got)
		}
	}
}
