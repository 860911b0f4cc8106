package modelconfig

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatch_ReloadsOnWrite(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeFile(t, tmpDir, "models.yaml", sampleYAML)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ch := Watch(ctx, path)

	// Wait a bit for the watcher to start
	time.Sleep(100 * time.Millisecond)

	updated := "openai:\n  general: gpt-4.1-mini\n"
	require.NoError(t, os.WriteFile(path, []byte(updated), 0644))

	// A write may surface as several events; the first ones can observe a
	// partially written file.
	for {
		select {
		case u, ok := <-ch:
			if !ok {
				t.Fatal("watch channel closed before the update arrived")
			}
			if u.Err != nil {
				continue
			}
			if m, found := u.Config.Lookup("openai", "general"); found && m == "gpt-4.1-mini" {
				require.Equal(t, path, u.Path)
				return
			}
		case <-ctx.Done():
			t.Fatal("timeout waiting for config reload")
		}
	}
}

func TestWatch_ClosesOnCancel(t *testing.T) {
	path := writeFile(t, t.TempDir(), "models.yaml", sampleYAML)

	ctx, cancel := context.WithCancel(context.Background())
	ch := Watch(ctx, path)
	cancel()

	select {
	case _, ok := <-ch:
		for ok {
			_, ok = <-ch
		}
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}
