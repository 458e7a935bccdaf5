package consoles

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

type writerConsole struct {
	mutex     sync.Mutex
	out       io.Writer
	timestamp bool
	prefixes  []string
}

func NewStdOutConsole() Console {
	return &writerConsole{
		out:       os.Stdout,
		timestamp: true,
	}
}

// NewWriterConsole writes without timestamps, so the output can be compared.
func NewWriterConsole(out io.Writer) Console {
	return &writerConsole{
		out: out,
	}
}

func (o *writerConsole) Printf(format string, a ...any) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	builder := strings.Builder{}
	if o.timestamp {
		builder.WriteString("[")
		builder.WriteString(time.Now().Format("15:04:05"))
		builder.WriteString("] ")
	}
	for _, prefix := range o.prefixes {
		builder.WriteString(prefix)
	}
	builder.WriteString(fmt.Sprintf(format, a...))

	_, _ = io.WriteString(o.out, builder.String())
}

func (o *writerConsole) PushPrefix(format string, a ...any) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.prefixes = append(o.prefixes, fmt.Sprintf(format, a...))
}

func (o *writerConsole) PopPrefix() {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	if len(o.prefixes) > 0 {
		o.prefixes = o.prefixes[:len(o.prefixes)-1]
	}
}
