package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Layout
	message.SetString(lang, "web.layout.brand", "Translating Space")
	message.SetString(lang, "web.layout.title", "%s | Translating Space")
	message.SetString(lang, "web.layout.signed_in_as", "Signed in as %s")
	message.SetString(lang, "web.layout.sign_in", "Sign in")
	message.SetString(lang, "web.layout.sign_out", "Sign out")

	// Errors
	message.SetString(lang, "web.error.title", "Error")
	message.SetString(lang, "web.error.not_found", "Page not found.")
	message.SetString(lang, "web.error.forbidden", "You are not allowed to do that.")
	message.SetString(lang, "web.error.unavailable", "The service is temporarily unavailable.")
	message.SetString(lang, "web.error.internal", "Something went wrong.")
	message.SetString(lang, "web.error.bad_request", "The request is invalid.")
	message.SetString(lang, "web.error.no_translation", "No translation exists in this component.")

	// Source summary
	message.SetString(lang, "web.source.title", "Source strings in %s")
	message.SetString(lang, "web.source.summary.heading", "Source strings summary")
	message.SetString(lang, "web.source.summary.total", "Strings")
	message.SetString(lang, "web.source.summary.source_checks", "Strings with failing source checks")
	message.SetString(lang, "web.source.summary.source_comments", "Strings with source comments")
	message.SetString(lang, "web.source.summary.checks_heading", "Failing checks")
	message.SetString(lang, "web.source.summary.check", "Check")
	message.SetString(lang, "web.source.summary.count", "Strings")
	message.SetString(lang, "web.source.summary.no_checks", "No failing source checks.")
	message.SetString(lang, "web.source.summary.review_all", "Review source strings")
	message.SetString(lang, "web.source.summary.matrix", "Language matrix")

	// Source review
	message.SetString(lang, "web.source.review.title", "Review source strings in %s")
	message.SetString(lang, "web.source.review.filter", "Filter")
	message.SetString(lang, "web.source.review.apply", "Apply")
	message.SetString(lang, "web.source.review.show_ignored", "Include ignored checks")
	message.SetString(lang, "web.source.review.empty", "No strings match the current filter.")
	message.SetString(lang, "web.source.review.page", "Page %d of %d")
	message.SetString(lang, "web.source.review.previous", "Previous")
	message.SetString(lang, "web.source.review.next", "Next")
	message.SetString(lang, "web.source.review.context", "Context")
	message.SetString(lang, "web.source.review.priority", "Priority")
	message.SetString(lang, "web.source.review.flags", "Check flags")
	message.SetString(lang, "web.source.review.screenshot", "Screenshot")
	message.SetString(lang, "web.source.review.no_screenshot", "No screenshot uploaded.")
	message.SetString(lang, "web.source.review.save", "Save")
	message.SetString(lang, "web.source.review.upload", "Upload")
	message.SetString(lang, "web.source.review.details", "Details")

	// Filter types
	message.SetString(lang, "web.source.filter.all", "All strings")
	message.SetString(lang, "web.source.filter.fuzzy", "Strings needing review")
	message.SetString(lang, "web.source.filter.untranslated", "Untranslated strings")
	message.SetString(lang, "web.source.filter.nottranslated", "Not translated strings")
	message.SetString(lang, "web.source.filter.translated", "Translated strings")
	message.SetString(lang, "web.source.filter.sourcecomments", "Strings with source comments")
	message.SetString(lang, "web.source.filter.targetcomments", "Strings with comments")
	message.SetString(lang, "web.source.filter.allchecks", "Strings with any failing checks")
	message.SetString(lang, "web.source.filter.sourcechecks", "Strings with failing source checks")

	// Priority presets
	message.SetString(lang, "web.source.priority.very_high", "Very high")
	message.SetString(lang, "web.source.priority.high", "High")
	message.SetString(lang, "web.source.priority.medium", "Medium")
	message.SetString(lang, "web.source.priority.low", "Low")
	message.SetString(lang, "web.source.priority.very_low", "Very low")

	// Source edit notices
	message.SetString(lang, "web.source.notice_priority_failed", "Failed to change a priority!")
	message.SetString(lang, "web.source.notice_flags_failed", "Failed to change check flags!")
	message.SetString(lang, "web.source.screenshot.error_required", "This field is required.")
	message.SetString(lang, "web.source.screenshot.error_too_large", "The uploaded screenshot is too large.")
	message.SetString(lang, "web.source.screenshot.error_invalid_image", "Upload a valid image. The file you uploaded was either not an image or a corrupted image.")

	// Matrix
	message.SetString(lang, "web.matrix.title", "Matrix view of %s")
	message.SetString(lang, "web.matrix.choose_languages", "Choose languages")
	message.SetString(lang, "web.matrix.show", "Show matrix")
	message.SetString(lang, "web.matrix.error_required", "Choose at least one language.")
	message.SetString(lang, "web.matrix.error_invalid_choice", "Select a valid choice. %s is not one of the available choices.")
	message.SetString(lang, "web.matrix.source", "Source")
	message.SetString(lang, "web.matrix.missing", "Not present")
	message.SetString(lang, "web.matrix.load_more", "Load more")
	message.SetString(lang, "web.matrix.loading", "Loading…")

	// Login
	message.SetString(lang, "web.login.title", "Sign in")
	message.SetString(lang, "web.login.username", "Username")
	message.SetString(lang, "web.login.password", "Password")
	message.SetString(lang, "web.login.submit", "Sign in")
	message.SetString(lang, "web.login.error_invalid", "Please enter a correct username and password.")
}
