package rest

import (
	"errors"
	"net/http"
	"testing"
	"time"
)

// Shutdown makes the listener return ErrServerClosed, which callers must
// treat as the normal exit, not a fatal error. Addr :0 picks a free port.
func TestShutdownEndsServeWithErrServerClosed(t *testing.T) {
	api := &API{}
	api.Server = &http.Server{
		Addr:    ":0",
		Handler: api.setUpServerHandler(),
	}

	served := make(chan error, 1)
	go func() {
		served <- api.Server.ListenAndServe()
	}()
	time.Sleep(100 * time.Millisecond)

	if err := api.Shutdown(); err != nil {
		t.Fatalf("Shutdown() = %v", err)
	}

	select {
	case err := <-served:
		if !errors.Is(err, http.ErrServerClosed) {
			t.Errorf("ListenAndServe() = %v, want http.ErrServerClosed", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("listener did not stop after Shutdown")
	}
}
