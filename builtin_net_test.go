package sol

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetFetchesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello from server"))
	}))
	defer srv.Close()

	v := mustEval(t, `unwrap_or (get `+quoteGo(srv.URL)+`) "failed".`)
	if v.Data.(string) != "hello from server" {
		t.Fatalf("get = %q", v.Data.(string))
	}
}

func TestPostSendsBody(t *testing.T) {
	var received string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 1024)
		n, _ := r.Body.Read(buf)
		received = string(buf[:n])
		w.Write([]byte("ack"))
	}))
	defer srv.Close()

	v := mustEval(t, `unwrap_or (post `+quoteGo(srv.URL)+` "payload") "failed".`)
	if v.Data.(string) != "ack" {
		t.Fatalf("post = %q", v.Data.(string))
	}
	if received != "payload" {
		t.Fatalf("server received %q", received)
	}
}

func TestGetOnUnreachableHostReturnsErrResult(t *testing.T) {
	v := mustEval(t, `get 'http://127.0.0.1:1'.`)
	if v.Tag != VTResult || v.Data.(*Result).Success {
		t.Fatalf("expected err Result, got %#v", v)
	}
}
