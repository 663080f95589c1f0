package render

import (
	"bufio"
	"io"
	"strconv"

	"github.com/matzehuels/pathcover/pkg/cover"
)

// WriteText writes the path count followed by one "len v1 v2 ..." line per
// path, using vertex labels when the cover has them.
func WriteText(w io.Writer, c *cover.Cover) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(strconv.Itoa(c.Count()))
	bw.WriteByte('\n')
	for _, path := range c.Paths {
		bw.WriteString(strconv.Itoa(len(path)))
		for _, v := range path {
			bw.WriteByte(' ')
			bw.WriteString(c.Label(v))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
