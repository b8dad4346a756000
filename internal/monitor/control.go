package monitor

import (
	"context"
	"fmt"
)

// KillSelected sends a termination request for the process under the
// selection. It returns the targeted PID and whether a request was sent.
// An empty or stale selection is not an error: nothing is sent.
//
// The request is fire-and-forget; whether the process actually died shows up
// in the next snapshot.
func KillSelected(ctx context.Context, st State, t Terminator) (int32, bool, error) {
	rec, err := st.Selected.Resolve(st.Records)
	if err != nil {
		return 0, false, nil
	}
	if err := t.Terminate(ctx, rec.PID); err != nil {
		return rec.PID, true, fmt.Errorf("terminate %s (%d): %w", rec.Name, rec.PID, err)
	}
	return rec.PID, true, nil
}
