// builtin_net.go — HTTP domain-stack row: wget/get/post via stdlib net/http.
// Grounded on the teacher's builtin_io_net.go `http` builtin; no third-party
// HTTP client library (resty, etc.) appears anywhere in the retrieval pack.
package sol

import (
	"io"
	"net/http"
	"strings"
	"time"
)

var netHTTPClient = &http.Client{Timeout: 30 * time.Second}

func registerNetBuiltins(r *Registry) {
	r.Add(&Builtin{Name: "wget", MinArity: 1, MaxArity: 1, Fn: biWget})
	r.Add(&Builtin{Name: "get", MinArity: 1, MaxArity: 1, Fn: biGet})
	r.Add(&Builtin{Name: "post", MinArity: 2, MaxArity: 2, Fn: biPost})
}

// biWget fetches url and returns its body as a String Result.
func biWget(args []Value) (Value, error) {
	return doRequest(http.MethodGet, args[0], "")
}

// biGet is an alias for wget kept distinct by name for spec symmetry with post.
func biGet(args []Value) (Value, error) {
	return doRequest(http.MethodGet, args[0], "")
}

func biPost(args []Value) (Value, error) {
	url, body := args[0], args[1]
	if body.Tag != VTString {
		return Value{}, newErr(TypeErrorK, 0, "post: body must be a String, got %s", body.Tag)
	}
	return doRequest(http.MethodPost, url, body.Data.(string))
}

func doRequest(method string, urlArg Value, body string) (Value, error) {
	if urlArg.Tag != VTString {
		return Value{}, newErr(TypeErrorK, 0, "%s: url must be a String, got %s", method, urlArg.Tag)
	}
	url := urlArg.Data.(string)

	var bodyReader io.Reader
	if body != "" {
		bodyReader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return ErrStr(err.Error()), nil
	}
	resp, err := netHTTPClient.Do(req)
	if err != nil {
		return ErrStr(err.Error()), nil
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return ErrStr(err.Error()), nil
	}
	if resp.StatusCode >= 400 {
		return ErrStr(string(data)), nil
	}
	return OkVal(StrVal(string(data))), nil
}
