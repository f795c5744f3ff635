package searchads

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/asakit/asakit/pkg/constants"
	"github.com/asakit/asakit/pkg/errors"
)

// SaveCampaigns writes campaigns to path as indented JSON, replacing the file.
func SaveCampaigns(path string, campaigns []Campaign) error {
	if campaigns == nil {
		campaigns = []Campaign{}
	}
	data, err := json.MarshalIndent(campaigns, "", "  ")
	if err != nil {
		return errors.WrapResource("encode", "campaigns", "", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("create", dir, err)
		}
	}
	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
