package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a create collided with a unique key.
var ErrAlreadyExists = errors.New("record already exists")

// AccessControl controls who may browse a project.
type AccessControl string

const (
	AccessPublic  AccessControl = "public"
	AccessPrivate AccessControl = "private"
)

// Project groups components under one access policy.
type Project struct {
	ID            int64
	Slug          string
	Name          string
	AccessControl AccessControl
}

// Component is one translatable resource inside a project.
type Component struct {
	ID        int64
	ProjectID int64
	Slug      string
	Name      string
}

// Direction is the text direction of a language.
type Direction string

const (
	DirectionLTR Direction = "ltr"
	DirectionRTL Direction = "rtl"
)

// Language describes one target language.
type Language struct {
	ID        int64
	Code      string
	Name      string
	Direction Direction
}

// Translation is a component rendered into one language.
type Translation struct {
	ID          int64
	ComponentID int64
	Language    Language
}

// UnitState is the translation progress of a unit.
type UnitState string

const (
	UnitUntranslated UnitState = "untranslated"
	UnitFuzzy        UnitState = "fuzzy"
	UnitTranslated   UnitState = "translated"
)

// Unit is one string inside a translation. Units of different translations
// describe the same source string when their checksums match.
type Unit struct {
	ID            int64
	TranslationID int64
	Checksum      string
	Position      int
	Priority      int
	Source        string
	Target        string
	Context       string
	State         UnitState
}

// Source holds reviewer metadata for one source string of a component.
type Source struct {
	ID          int64
	ComponentID int64
	Checksum    string
	Priority    int
	CheckFlags  string
	Screenshot  string
}

// Check is a failing quality check. LanguageID zero marks a source check.
type Check struct {
	ID          int64
	ComponentID int64
	Checksum    string
	LanguageID  int64
	Name        string
	Ignore      bool
}

// CheckCount aggregates failing checks by name.
type CheckCount struct {
	Name  string
	Count int
}

// Comment is a reviewer note. LanguageID zero marks a source comment.
type Comment struct {
	ID          int64
	ComponentID int64
	Checksum    string
	LanguageID  int64
	UserID      string
	Body        string
	CreatedAt   time.Time
}

// User is an account allowed to sign in.
type User struct {
	ID           string
	Username     string
	DisplayName  string
	PasswordHash string
	IsSuperuser  bool
}

// Permission names one per-project capability.
type Permission string

const (
	PermissionViewProject      Permission = "project.view"
	PermissionEditPriority     Permission = "source.edit_priority"
	PermissionEditFlags        Permission = "source.edit_flags"
	PermissionUploadScreenshot Permission = "source.upload_screenshot"
)

// Grant gives a user one permission on a project.
type Grant struct {
	ProjectID  int64
	UserID     string
	Permission Permission
}

// WebSession is a persisted browser session.
type WebSession struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// SourceSummary aggregates review statistics of a source translation.
type SourceSummary struct {
	Total          int
	SourceChecks   int
	SourceComments int
	Checks         []CheckCount
}

// UnitFilterKind selects which units of a translation are listed.
type UnitFilterKind string

const (
	FilterAll            UnitFilterKind = "all"
	FilterFuzzy          UnitFilterKind = "fuzzy"
	FilterUntranslated   UnitFilterKind = "untranslated"
	FilterNotTranslated  UnitFilterKind = "nottranslated"
	FilterTranslated     UnitFilterKind = "translated"
	FilterSourceComments UnitFilterKind = "sourcecomments"
	FilterTargetComments UnitFilterKind = "targetcomments"
	FilterAllChecks      UnitFilterKind = "allchecks"
	FilterSourceChecks   UnitFilterKind = "sourcechecks"
	FilterNamedCheck     UnitFilterKind = "check"
)

// UnitFilter narrows a unit listing. A non-empty Checksum overrides Kind.
type UnitFilter struct {
	Kind        UnitFilterKind
	Checksum    string
	CheckName   string
	SourceCheck bool
	Ignored     bool
}

// CatalogStore reads the project/component/translation hierarchy.
type CatalogStore interface {
	GetProjectBySlug(ctx context.Context, slug string) (Project, error)
	GetProject(ctx context.Context, id int64) (Project, error)
	GetComponentBySlug(ctx context.Context, projectID int64, slug string) (Component, error)
	GetComponent(ctx context.Context, id int64) (Component, error)
	ListTranslations(ctx context.Context, componentID int64) ([]Translation, error)
	GetTranslationByLanguage(ctx context.Context, componentID int64, languageCode string) (Translation, error)
}

// LanguageStore reads languages.
type LanguageStore interface {
	GetLanguageByCode(ctx context.Context, code string) (Language, error)
	ListLanguagesByCodes(ctx context.Context, codes []string) ([]Language, error)
}

// UnitStore reads units of a translation in natural order (priority, position).
type UnitStore interface {
	CountUnits(ctx context.Context, translationID int64, filter UnitFilter) (int, error)
	ListUnits(ctx context.Context, translationID int64, filter UnitFilter, offset int, limit int) ([]Unit, error)
	GetUnitsByChecksums(ctx context.Context, translationID int64, checksums []string) (map[string]Unit, error)
	SummarizeSource(ctx context.Context, translationID int64) (SourceSummary, error)
}

// SourceStore reads and updates source-string metadata. Each update writes a
// single column.
type SourceStore interface {
	GetSource(ctx context.Context, id int64) (Source, error)
	ListSourcesByChecksums(ctx context.Context, componentID int64, checksums []string) (map[string]Source, error)
	UpdateSourcePriority(ctx context.Context, id int64, priority int) error
	UpdateSourceCheckFlags(ctx context.Context, id int64, flags string) error
	UpdateSourceScreenshot(ctx context.Context, id int64, screenshot string) error
}

// AccountStore reads users and their project grants.
type AccountStore interface {
	GetUser(ctx context.Context, id string) (User, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)
	ListGrants(ctx context.Context, projectID int64, userID string) ([]Permission, error)
}

// SessionStore persists web sessions.
type SessionStore interface {
	PutWebSession(ctx context.Context, session WebSession) error
	GetWebSession(ctx context.Context, id string) (WebSession, error)
	DeleteWebSession(ctx context.Context, id string) error
}

// CatalogWriter creates catalog records. Returned records carry their
// assigned ids.
type CatalogWriter interface {
	CreateProject(ctx context.Context, project Project) (Project, error)
	CreateComponent(ctx context.Context, component Component) (Component, error)
	CreateLanguage(ctx context.Context, language Language) (Language, error)
	CreateTranslation(ctx context.Context, componentID int64, languageID int64) (Translation, error)
	CreateUnit(ctx context.Context, unit Unit) (Unit, error)
	CreateSource(ctx context.Context, source Source) (Source, error)
	CreateCheck(ctx context.Context, check Check) (Check, error)
	CreateComment(ctx context.Context, comment Comment) (Comment, error)
	CreateUser(ctx context.Context, user User) (User, error)
	PutGrant(ctx context.Context, grant Grant) error
}

// Store is the full persistence contract of the translation catalog.
type Store interface {
	CatalogStore
	LanguageStore
	UnitStore
	SourceStore
	AccountStore
	SessionStore
	CatalogWriter
	Close() error
}
