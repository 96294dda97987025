// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	Root   = "/"
	Login  = "/login"
	Logout = "/logout"
	Health = "/up"

	SourcePrefix             = "/source/"
	SourceShowPattern        = SourcePrefix + "{project}/{component}/{$}"
	SourceReviewPattern      = SourcePrefix + "{project}/{component}/review"
	SourceRestPattern        = SourcePrefix + "{rest...}"
	ScreenshotsPrefix        = "/media/screenshots/"
	ScreenshotPattern        = ScreenshotsPrefix + "{name}"
	AppPrefix                = "/app/"
	SourcesPrefix            = "/app/sources/"
	AppSourcePriorityPattern = SourcesPrefix + "{sourceID}/priority"
	AppSourceFlagsPattern    = SourcesPrefix + "{sourceID}/check-flags"
	AppSourceShotPattern     = SourcesPrefix + "{sourceID}/screenshot"
	AppSourcesRestPattern    = SourcesPrefix + "{rest...}"
	MatrixPrefix             = "/app/matrix/"
	AppMatrixPattern         = MatrixPrefix + "{project}/{component}/{$}"
	AppMatrixLoadPattern     = MatrixPrefix + "{project}/{component}/load"
	AppMatrixRestPattern     = MatrixPrefix + "{rest...}"

	// NextParam carries the post-action redirect target.
	NextParam = "next"
)

// Source returns the source summary page of a component.
func Source(project string, component string) string {
	return SourcePrefix + escapeSegment(project) + "/" + escapeSegment(component) + "/"
}

// SourceReview returns the source review listing of a component.
func SourceReview(project string, component string) string {
	return SourcePrefix + escapeSegment(project) + "/" + escapeSegment(component) + "/review"
}

// SourceReviewQuery returns the review listing with an encoded query.
func SourceReviewQuery(project string, component string, query url.Values) string {
	base := SourceReview(project, component)
	if encoded := query.Encode(); encoded != "" {
		return base + "?" + encoded
	}
	return base
}

// SourceDetail returns the review listing narrowed to one source string.
func SourceDetail(project string, component string, checksum string) string {
	return SourceReviewQuery(project, component, url.Values{"checksum": {strings.TrimSpace(checksum)}})
}

// AppSourcePriority returns the priority edit endpoint of a source string.
func AppSourcePriority(sourceID int64) string {
	return SourcesPrefix + strconv.FormatInt(sourceID, 10) + "/priority"
}

// AppSourceCheckFlags returns the check flags edit endpoint of a source string.
func AppSourceCheckFlags(sourceID int64) string {
	return SourcesPrefix + strconv.FormatInt(sourceID, 10) + "/check-flags"
}

// AppSourceScreenshot returns the screenshot upload endpoint of a source string.
func AppSourceScreenshot(sourceID int64) string {
	return SourcesPrefix + strconv.FormatInt(sourceID, 10) + "/screenshot"
}

// AppMatrix returns the language matrix page of a component.
func AppMatrix(project string, component string) string {
	return MatrixPrefix + escapeSegment(project) + "/" + escapeSegment(component) + "/"
}

// AppMatrixLoad returns the matrix row loader for a window of rows.
func AppMatrixLoad(project string, component string, languageCodes string, offset int) string {
	query := url.Values{}
	query.Set("offset", strconv.Itoa(offset))
	query.Set("lang", languageCodes)
	return MatrixPrefix + escapeSegment(project) + "/" + escapeSegment(component) + "/load?" + query.Encode()
}

// Screenshot returns the public URL of a stored screenshot.
func Screenshot(name string) string {
	return ScreenshotsPrefix + escapeSegment(name)
}

// LoginWithNext returns the login page that returns to next afterwards.
func LoginWithNext(next string) string {
	next = strings.TrimSpace(next)
	if next == "" {
		return Login
	}
	return Login + "?" + url.Values{NextParam: {next}}.Encode()
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
