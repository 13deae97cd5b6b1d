package prompt

import (
	"strings"
	"testing"
)

func TestWorldSystem(t *testing.T) {
	system := WorldSystem(1848, "the revolutions succeed")
	if !strings.Contains(system, "**Starting Year**: 1848") {
		t.Errorf("missing starting year")
	}
	if !strings.Contains(system, "the revolutions succeed") {
		t.Errorf("missing notes")
	}
}

func TestReportSystem(t *testing.T) {
	system := ReportSystem(1848, "a continent of republics")
	if !strings.Contains(system, "starting from the year 1848") {
		t.Errorf("missing starting year")
	}
	if !strings.Contains(system, "a continent of republics") {
		t.Errorf("missing world description")
	}
}

func TestNarratorSystem(t *testing.T) {
	fresh := NarratorSystem("world", "report", false)
	resumed := NarratorSystem("world", "report", true)

	for _, system := range []string{fresh, resumed} {
		if !strings.Contains(system, "World Description:\nworld") {
			t.Errorf("missing world context")
		}
		if !strings.Contains(system, "Divergent Timeline Report:\nreport") {
			t.Errorf("missing report context")
		}
	}

	if strings.Contains(fresh, "previous simulation session") {
		t.Errorf("fresh sessions must not carry the resume recap instruction")
	}
	if !strings.Contains(resumed, "previous simulation session") {
		t.Errorf("resumed sessions must carry the recap instruction")
	}
}

func TestChatSimulationName(t *testing.T) {
	if got := ChatSimulationName(12); got != "chrono_chat_report_12" {
		t.Errorf("ChatSimulationName(12) = %q", got)
	}
}

func TestChatSeed(t *testing.T) {
	seed := ChatSeed(3, "the narrative")
	if !strings.Contains(seed, "Report #3") || !strings.Contains(seed, "the narrative") {
		t.Errorf("seed = %q", seed)
	}
}
