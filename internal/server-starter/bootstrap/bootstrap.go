package bootstrap

import (
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidConfiguration means an externally supplied name failed its
// allow-list check. Raised before any payload text is assembled so a bad
// name can never reach a generated script or an API call.
var ErrInvalidConfiguration = errors.New("configuration value failed validation")

var (
	tableNamePattern  = regexp.MustCompile(`^[A-Za-z0-9\-,._+:@%/]+$`)
	bucketNamePattern = regexp.MustCompile(`^[a-z0-9\-.]+$`)
)

// Config holds the externally supplied names embedded into every bootstrap
// payload. All of them come from the environment, which is why they are
// allow-listed rather than trusted.
type Config struct {
	ServerTableName string
	ScriptsBucket   string
	WorldDataBucket string
	LifecycleAPIURL string
}

// Payload is the generated bootstrap script in both forms: plaintext for
// operators and the base64 transport encoding the provisioning API expects.
type Payload struct {
	Plain   string
	Encoded string
}

type Builder interface {
	Build(serverID int64) (Payload, error)
}

type builder struct {
	cfg Config
}

func (b *builder) Build(serverID int64) (Payload, error) {
	if err := b.validate(); err != nil {
		return Payload{}, fmt.Errorf("Builder.Build: %w", err)
	}

	var s script
	s.shebang()
	s.export("SERVER_ID", strconv.FormatInt(serverID, 10))
	s.export("SERVER_TABLE_NAME", b.cfg.ServerTableName)
	s.export("SCRIPTS_BUCKET", b.cfg.ScriptsBucket)
	s.export("WORLD_DATA_BUCKET", b.cfg.WorldDataBucket)
	s.export("LIFECYCLE_API_URL", b.cfg.LifecycleAPIURL)
	s.command(`aws s3 cp "s3://$SCRIPTS_BUCKET/server-startup/" /home/ec2-user/server-startup --recursive`)
	s.command("sh /home/ec2-user/server-startup/startup.sh")

	plain := s.String()
	return Payload{
		Plain:   plain,
		Encoded: base64.StdEncoding.EncodeToString([]byte(plain)),
	}, nil
}

func (b *builder) validate() error {
	if !tableNamePattern.MatchString(b.cfg.ServerTableName) {
		return fmt.Errorf("%w: server table name %q", ErrInvalidConfiguration, b.cfg.ServerTableName)
	}
	if !bucketNamePattern.MatchString(b.cfg.ScriptsBucket) {
		return fmt.Errorf("%w: scripts bucket %q", ErrInvalidConfiguration, b.cfg.ScriptsBucket)
	}
	if !bucketNamePattern.MatchString(b.cfg.WorldDataBucket) {
		return fmt.Errorf("%w: world data bucket %q", ErrInvalidConfiguration, b.cfg.WorldDataBucket)
	}
	return nil
}

func NewBuilder(cfg Config) Builder {
	return &builder{
		cfg: cfg,
	}
}

// script assembles shell text line by line. Values only ever enter the
// script through export, which single-quotes them, so a value can never
// terminate its own quoting and inject commands.
type script struct {
	lines []string
}

func (s *script) shebang() {
	s.lines = append(s.lines, "#!/bin/bash")
}

func (s *script) export(name string, value string) {
	s.lines = append(s.lines, fmt.Sprintf("export %s=%s", name, shellQuote(value)))
}

func (s *script) command(line string) {
	s.lines = append(s.lines, line)
}

func (s *script) String() string {
	return strings.Join(s.lines, "\n") + "\n"
}

func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}
