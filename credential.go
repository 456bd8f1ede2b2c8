package ons

import (
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
)

// replaced in tests
var userHomeDir = os.UserHomeDir

// fields copied over from the credential file, every other field is ignored
var credentialFields = []string{KeyAccessKey, KeySecretKey, KeyNameSrvAddr, KeyGroupID}

// loadCredentialFile copies the recognized fields of <home>/ons/credential
// into the property set. The file is optional: a missing, unreadable or
// malformed one is only logged. The fields it does carry go through the
// validated write, so a disallowed value fails the load.
func (p *FactoryProperty) loadCredentialFile() error {
	home, err := userHomeDir()
	if err != nil {
		p.logger.Infof("no home directory, skip the credential file:%s", err)
		return nil
	}

	path := filepath.Join(home, "ons", "credential")
	st, err := os.Stat(path)
	if err != nil || !st.Mode().IsRegular() {
		p.logger.Infof("no credential file found at %s", path)
		return nil
	}

	d, err := os.ReadFile(path)
	if err != nil {
		p.logger.Warnf("cannot read the credential file %s:%s", path, err)
		return nil
	}

	if !gjson.ValidBytes(d) {
		p.logger.Warnf("cannot parse the credential file %s", path)
		return nil
	}

	root := gjson.ParseBytes(d)
	if !root.IsObject() {
		p.logger.Warnf("the credential file %s is not a JSON object", path)
		return nil
	}

	for _, key := range credentialFields {
		field := root.Get(key)
		if !field.Exists() {
			continue
		}

		if err := p.SetProperty(key, field.String()); err != nil {
			return err
		}
		p.logger.Infof("set %s through the credential file", key)
	}
	return nil
}
