package router

import "net/http"

// ResponseState reports what a response has actually sent to the
// client. The writer the mux hands to responses implements it, so
// middleware can read the outcome by asserting the writer instead of
// wrapping it again.
type ResponseState interface {
	// Status is the code sent by the first WriteHeader, zero until then.
	Status() int
	// BytesWritten is the number of body bytes sent so far.
	BytesWritten() int
	// Written reports whether the header has gone out.
	Written() bool
}

// recordingWriter tracks the status code and body size flowing through
// the underlying writer. The first WriteHeader wins; a Write before any
// WriteHeader pins the status to 200, mirroring net/http.
type recordingWriter struct {
	http.ResponseWriter
	status int
	bytes  int
	wrote  bool
}

func (w *recordingWriter) WriteHeader(status int) {
	if w.wrote {
		return
	}
	w.status = status
	w.wrote = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *recordingWriter) Write(b []byte) (int, error) {
	if !w.wrote {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func (w *recordingWriter) Status() int { return w.status }

func (w *recordingWriter) BytesWritten() int { return w.bytes }

func (w *recordingWriter) Written() bool { return w.wrote }
