package media

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"
	"strconv"
	"strings"

	"mytube/internal/domain/service"
	"mytube/internal/errors"
)

// ffprobe reads the container duration with the ffprobe binary.
type ffprobe struct {
	binary string
}

// NewFFProbe returns a MediaProbe backed by the given ffprobe executable.
func NewFFProbe(binary string) service.MediaProbe {
	return &ffprobe{binary: binary}
}

type probeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

func (p *ffprobe) Duration(ctx context.Context, localPath string) (float64, error) {
	//nolint:gosec // binary comes from config, path from our own temp dir
	cmd := exec.CommandContext(ctx, p.binary,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "json",
		localPath,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, errors.WithStack(ctxErr)
		}

		return 0, errors.Wrapf(err, "ffprobe: %s", strings.TrimSpace(stderr.String()))
	}

	return parseProbeOutput(stdout.Bytes())
}

func parseProbeOutput(data []byte) (float64, error) {
	var out probeOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return 0, errors.Wrap(err, "decode ffprobe output")
	}
	if out.Format.Duration == "" {
		return 0, errors.New("ffprobe reported no duration")
	}

	duration, err := strconv.ParseFloat(out.Format.Duration, 64)
	if err != nil {
		return 0, errors.Wrap(err, "parse duration")
	}

	return duration, nil
}
