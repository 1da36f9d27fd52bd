package memory

import (
	"sync"
	"testing"

	"github.com/marcosalmeidaedp/bot-cliente/pkg/store"
)

func TestGetCreatesDefaultSession(t *testing.T) {
	repo := NewSessionRepository()

	s := repo.Get(42)
	if s.ChatID != 42 {
		t.Errorf("ChatID = %d, want 42", s.ChatID)
	}
	if s.Phase != store.PhaseIdle {
		t.Errorf("Phase = %q, want %q", s.Phase, store.PhaseIdle)
	}
	if s.SelectedField != store.FieldNone {
		t.Errorf("SelectedField = %q, want unset", s.SelectedField)
	}
}

func TestSessionIsolationAcrossChats(t *testing.T) {
	repo := NewSessionRepository()

	a := repo.Get(1)
	a.SelectedField = store.FieldMedidor
	a.Phase = store.PhaseAwaitingQuery
	repo.Save(a)

	b := repo.Get(2)
	if b.SelectedField != store.FieldNone || b.Phase != store.PhaseIdle {
		t.Errorf("chat 2 leaked state from chat 1: %+v", b)
	}

	again := repo.Get(1)
	if again.SelectedField != store.FieldMedidor || again.Phase != store.PhaseAwaitingQuery {
		t.Errorf("chat 1 lost its state: %+v", again)
	}
}

func TestDelete(t *testing.T) {
	repo := NewSessionRepository()

	s := repo.Get(7)
	s.SelectedField = store.FieldNome
	repo.Save(s)
	repo.Delete(7)

	if got := repo.Get(7); got.SelectedField != store.FieldNone {
		t.Errorf("deleted session came back with state: %+v", got)
	}
}

func TestLockSerializesSameChat(t *testing.T) {
	repo := NewSessionRepository()

	const iterations = 200
	var wg sync.WaitGroup
	wg.Add(2)
	for i := 0; i < 2; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				unlock := repo.Lock(99)
				s := repo.Get(99)
				s.LastQuery = s.LastQuery + "x"
				repo.Save(s)
				unlock()
			}
		}()
	}
	wg.Wait()

	if got := len(repo.Get(99).LastQuery); got != 2*iterations {
		t.Errorf("lost updates under lock: got %d appends, want %d", got, 2*iterations)
	}
}
