package pihole

import (
	"os"
	"path/filepath"

	"github.com/rileyhilliard/minipadd/internal/errors"
	"github.com/subosito/gotenv"
)

// SetupVarsFile is the name of Pi-hole's own installer config.
const SetupVarsFile = "setupVars.conf"

// Keys read from setupVars.conf.
const (
	keyInterface   = "PIHOLE_INTERFACE"
	keyWebPassword = "WEBPASSWORD"
)

// SetupVars holds the values minipadd needs from setupVars.conf.
type SetupVars struct {
	Interface string
	Token     string
}

// ResolveSetupVars reads {confDir}/setupVars.conf. An unreadable file is an
// error; lines that are not KEY=VALUE pairs are skipped and missing keys
// simply come back empty.
func ResolveSetupVars(confDir string) (SetupVars, error) {
	path := filepath.Join(confDir, SetupVarsFile)

	f, err := os.Open(path)
	if err != nil {
		return SetupVars{}, errors.WrapWithCode(err, errors.ErrCredentials,
			"Cannot read "+path,
			"Make the Pi-hole config directory readable, or point PIHOLE_CONFDIR at it")
	}
	defer f.Close()

	env := gotenv.Parse(f)

	return SetupVars{
		Interface: env[keyInterface],
		Token:     env[keyWebPassword],
	}, nil
}
