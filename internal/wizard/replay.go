package wizard

import "fmt"

// Replay starts the wizard if needed and selects each answer in turn.
func (w *Wizard) Replay(answers []string) error {
	if w.role == RoleEntry {
		if err := w.Advance(); err != nil {
			return err
		}
	}
	for i, a := range answers {
		if err := w.Select(a); err != nil {
			return fmt.Errorf("answer %d (%q) at %s: %w", i+1, a, w.role, err)
		}
	}
	return nil
}
