package ipc

import (
	"bufio"
	"io"
	"strings"

	"go.uber.org/zap"
)

// relayLines forwards each line read from r to the logger at info level,
// preserving line order. It runs until the stream ends; forwarding is
// best-effort, so a read error ends the relay without escalating anywhere.
func relayLines(log *zap.SugaredLogger, r io.Reader) {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil {
			if line != "" {
				log.Infof("%s", strings.TrimSuffix(line, "\r"))
			}
			return
		}
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		log.Infof("%s", line)
	}
}
