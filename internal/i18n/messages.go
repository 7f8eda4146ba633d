package i18n

// defaultMessages son los mensajes embebidos en inglés. Un locale en
// locales/active.<lang>.toml puede sobreescribir cualquiera de estos IDs.
var defaultMessages = `
	[comment.wrapper]
	other = "🧙 **Documentation Summoner speaks:**\n\n{{.Body}}"

	[comment.usage]
	other = "Usage: ` + "`/summon <command>`" + `. Available commands: ` + "`summary`, `explain`, `risks`, `title`, `labels`" + `."

	[comment.unknown_command]
	other = "I don't know the command ` + "`{{.Token}}`" + `. Try ` + "`/summon summary`, `/summon explain`, `/summon risks`, `/summon title` or `/summon labels`" + `."

	[error.session]
	other = "could not open a platform session for installation {{.InstallationID}}"

	[error.get_diff]
	other = "could not fetch the diff for PR #{{.pr_number}}"

	[error.post_comment]
	other = "could not post the comment on #{{.pr_number}}"

	[error.add_labels]
	other = "could not add labels to PR #{{.pr_number}}"

	[error.set_title]
	other = "could not update the title of PR #{{.pr_number}}"

	[error.insufficient_permissions]
	other = "The app has no permission to edit PR #{{.pr_number}} on {{.owner}}/{{.repo}}"

	[error.token_scopes_help]
	other = "Check that the installation (or token) has the 'pull_requests: write' and 'issues: write' permissions"

	[error_missing_api_key]
	other = "The {{.Provider}} API key is not configured"

	[ai_service.error_ai_client]
	other = "could not create the AI client: {{.Error}}"

	[ai_service.error_empty_response]
	other = "the model returned an empty response"

	[routing.reason_high_quality]
	other = "heavy model: full-diff reasoning task"

	[routing.reason_economical]
	other = "light model: short and cheap task"

	[routing.reason_default]
	other = "unmapped task, falling back to the heavy default"
`
