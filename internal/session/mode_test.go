package session

import (
	"testing"

	"github.com/verte-zerg/numeracal/internal/model"
)

func TestSelectMode(t *testing.T) {
	cases := []struct {
		name       string
		tty        bool
		fullScreen bool
		flags      model.Flags
		want       model.Mode
	}{
		{"piped", false, true, model.Flags{}, model.ModePipedBatch},
		{"piped ignores recursive", false, true, model.Flags{Recursive: true}, model.ModePipedBatch},
		{"piped ignores fast", false, false, model.Flags{Fast: true}, model.ModePipedBatch},
		{"recursive", true, true, model.Flags{Recursive: true}, model.ModeInteractiveRecursive},
		{"recursive beats fast", true, true, model.Flags{Recursive: true, Fast: true}, model.ModeInteractiveRecursive},
		{"recursive beats json", true, false, model.Flags{Recursive: true, JSON: true}, model.ModeInteractiveRecursive},
		{"fast", true, true, model.Flags{Fast: true}, model.ModeFastBatch},
		{"json", true, true, model.Flags{JSON: true}, model.ModeFastBatch},
		{"no full screen", true, false, model.Flags{}, model.ModeFastBatch},
		{"full screen", true, true, model.Flags{}, model.ModeInteractiveFullScreen},
	}
	for _, tc := range cases {
		if got := SelectMode(tc.tty, tc.fullScreen, tc.flags); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}
