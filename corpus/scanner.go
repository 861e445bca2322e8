package corpus

import (
	"bytes"
	"io"
)

// DefaultChunkSize is the read chunk size used by NewScanner.
const DefaultChunkSize = 1 << 20 // 1 MiB

// Scanner yields complete lines from a reader, reassembling lines that span
// chunk boundaries. Unlike bufio.Scanner it has no maximum line length: a
// line longer than the chunk size simply accumulates across reads.
type Scanner struct {
	r     io.Reader
	chunk []byte
	rest  []byte // unconsumed bytes carried across Read calls
	line  []byte
	err   error
	eof   bool
}

// NewScanner creates a Scanner reading in DefaultChunkSize chunks.
func NewScanner(r io.Reader) *Scanner {
	return NewScannerSize(r, DefaultChunkSize)
}

// NewScannerSize creates a Scanner with an explicit chunk size.
// Tests use small sizes to exercise chunk-boundary reassembly.
func NewScannerSize(r io.Reader, chunkSize int) *Scanner {
	if chunkSize < 1 {
		chunkSize = DefaultChunkSize
	}
	return &Scanner{
		r:     r,
		chunk: make([]byte, chunkSize),
	}
}

// Scan advances to the next line. It returns false at end of input or on
// read error; Err distinguishes the two.
func (s *Scanner) Scan() bool {
	for {
		if i := bytes.IndexByte(s.rest, '\n'); i >= 0 {
			s.line = s.rest[:i]
			s.rest = s.rest[i+1:]
			return true
		}
		if s.eof {
			if len(s.rest) > 0 {
				// Final line without trailing newline.
				s.line = s.rest
				s.rest = nil
				return true
			}
			return false
		}
		if s.err != nil {
			return false
		}

		n, err := s.r.Read(s.chunk)
		if n > 0 {
			// rest may alias a previous chunk read, so it must be copied
			// out before the buffer is reused.
			s.rest = append(append([]byte(nil), s.rest...), s.chunk[:n]...)
		}
		if err == io.EOF {
			s.eof = true
		} else if err != nil {
			s.err = err
		}
	}
}

// Line returns the current line. Valid until the next call to Scan.
func (s *Scanner) Line() []byte {
	return s.line
}

// Text returns the current line as a string.
func (s *Scanner) Text() string {
	return string(s.line)
}

// Err returns the first non-EOF error encountered while reading.
func (s *Scanner) Err() error {
	return s.err
}
