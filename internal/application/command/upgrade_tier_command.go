package command

import "codeforge/internal/application/common"

type UpgradeTierCommand struct {
	Tier string `json:"tier"`
}

type UpgradeTierCommandResult struct {
	Result *common.UserResult `json:"result"`
}
