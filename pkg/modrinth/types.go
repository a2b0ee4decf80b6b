package modrinth

import (
	"time"
)

// ProjectType identifies the kind of resource a project is.
type ProjectType string

const (
	ProjectTypeMod          ProjectType = "mod"
	ProjectTypeModpack      ProjectType = "modpack"
	ProjectTypeResourcepack ProjectType = "resourcepack"
	ProjectTypeShader       ProjectType = "shader"
)

// ProjectStatus is the moderation status of a project.
type ProjectStatus string

const (
	ProjectStatusApproved   ProjectStatus = "approved"
	ProjectStatusRejected   ProjectStatus = "rejected"
	ProjectStatusDraft      ProjectStatus = "draft"
	ProjectStatusUnlisted   ProjectStatus = "unlisted"
	ProjectStatusArchived   ProjectStatus = "archived"
	ProjectStatusProcessing ProjectStatus = "processing"
	ProjectStatusUnknown    ProjectStatus = "unknown"
)

// SideSupport describes whether a project is required, optional, or
// unsupported on the client or server side.
type SideSupport string

const (
	SideSupportRequired    SideSupport = "required"
	SideSupportOptional    SideSupport = "optional"
	SideSupportUnsupported SideSupport = "unsupported"
	SideSupportUnknown     SideSupport = "unknown"
)

// Project is a mod, modpack, resource pack, or shader listing.
type Project struct {
	ID                   string            `json:"id"`
	Slug                 string            `json:"slug"`
	ProjectType          ProjectType       `json:"project_type"`
	Team                 string            `json:"team"`
	Title                string            `json:"title"`
	Description          string            `json:"description"`
	Body                 string            `json:"body"`
	Published            time.Time         `json:"published"`
	Updated              time.Time         `json:"updated"`
	Approved             *time.Time        `json:"approved,omitempty"`
	Status               ProjectStatus     `json:"status"`
	ModeratorMessage     *ModeratorMessage `json:"moderator_message,omitempty"`
	License              License           `json:"license"`
	ClientSide           SideSupport       `json:"client_side"`
	ServerSide           SideSupport       `json:"server_side"`
	Downloads            int               `json:"downloads"`
	Followers            int               `json:"followers"`
	Categories           []string          `json:"categories"`
	AdditionalCategories []string          `json:"additional_categories,omitempty"`
	Versions             []string          `json:"versions"`
	GameVersions         []string          `json:"game_versions,omitempty"`
	Loaders              []string          `json:"loaders,omitempty"`
	IconURL              *string           `json:"icon_url,omitempty"`
	IssuesURL            *string           `json:"issues_url,omitempty"`
	SourceURL            *string           `json:"source_url,omitempty"`
	WikiURL              *string           `json:"wiki_url,omitempty"`
	DiscordURL           *string           `json:"discord_url,omitempty"`
	DonationURLs         []DonationLink    `json:"donation_urls,omitempty"`
	Gallery              []GalleryItem     `json:"gallery,omitempty"`
	Color                *int              `json:"color,omitempty"`
}

// ModeratorMessage is a note left on a project by the moderation team.
type ModeratorMessage struct {
	Message string  `json:"message"`
	Body    *string `json:"body,omitempty"`
}

// License describes the license a project is distributed under.
type License struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	URL  *string `json:"url,omitempty"`
}

// DonationLink is a donation platform entry on a project page.
type DonationLink struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// GalleryItem is a single image in a project's gallery with its display
// metadata.
type GalleryItem struct {
	URL         string    `json:"url"`
	Featured    bool      `json:"featured"`
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Created     time.Time `json:"created"`
	Ordering    *int      `json:"ordering,omitempty"`
}

// ProjectDependencies is the dependency closure of a project: every project
// and version the project's versions depend on.
type ProjectDependencies struct {
	Projects []Project `json:"projects"`
	Versions []Version `json:"versions"`
}

// ProjectIdentifier is the minimal response shape of the existence check
// endpoint.
type ProjectIdentifier struct {
	ID string `json:"id"`
}

// ReleaseChannel is a version's release maturity.
type ReleaseChannel string

const (
	ReleaseChannelRelease ReleaseChannel = "release"
	ReleaseChannelBeta    ReleaseChannel = "beta"
	ReleaseChannelAlpha   ReleaseChannel = "alpha"
)

// Version is a single published version of a project.
type Version struct {
	ID            string              `json:"id"`
	ProjectID     string              `json:"project_id"`
	AuthorID      string              `json:"author_id"`
	Name          string              `json:"name"`
	VersionNumber string              `json:"version_number"`
	Changelog     *string             `json:"changelog,omitempty"`
	DatePublished time.Time           `json:"date_published"`
	Downloads     int                 `json:"downloads"`
	VersionType   ReleaseChannel      `json:"version_type"`
	Featured      bool                `json:"featured"`
	Files         []VersionFile       `json:"files"`
	Dependencies  []VersionDependency `json:"dependencies,omitempty"`
	GameVersions  []string            `json:"game_versions"`
	Loaders       []string            `json:"loaders"`
}

// VersionFile is a downloadable file belonging to a version.
type VersionFile struct {
	Hashes   FileHashes `json:"hashes"`
	URL      string     `json:"url"`
	Filename string     `json:"filename"`
	Primary  bool       `json:"primary"`
	Size     int        `json:"size"`
}

// FileHashes carries the content hashes of a version file.
type FileHashes struct {
	SHA1   string `json:"sha1"`
	SHA512 string `json:"sha512"`
}

// DependencyType describes how a version depends on another project or
// version.
type DependencyType string

const (
	DependencyTypeRequired     DependencyType = "required"
	DependencyTypeOptional     DependencyType = "optional"
	DependencyTypeIncompatible DependencyType = "incompatible"
	DependencyTypeEmbedded     DependencyType = "embedded"
)

// VersionDependency references another project or version that a version
// depends on. References are by string id only; the library tracks no live
// relationships.
type VersionDependency struct {
	ProjectID      *string        `json:"project_id,omitempty"`
	VersionID      *string        `json:"version_id,omitempty"`
	FileName       *string        `json:"file_name,omitempty"`
	DependencyType DependencyType `json:"dependency_type"`
}

// UserRole is the site-wide role of a user.
type UserRole string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleModerator UserRole = "moderator"
	UserRoleDeveloper UserRole = "developer"
)

// User is a Modrinth user account.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      *string   `json:"name,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Bio       *string   `json:"bio,omitempty"`
	AvatarURL string    `json:"avatar_url"`
	Created   time.Time `json:"created"`
	Role      UserRole  `json:"role"`
	Badges    int       `json:"badges"`
	GitHubID  *int      `json:"github_id,omitempty"`
}

// Notification is an entry in a user's notification feed.
type Notification struct {
	ID      string    `json:"id"`
	UserID  string    `json:"user_id"`
	Type    *string   `json:"type,omitempty"`
	Title   string    `json:"title"`
	Text    string    `json:"text"`
	Link    string    `json:"link"`
	Read    bool      `json:"read"`
	Created time.Time `json:"created"`
	Actions []any     `json:"actions,omitempty"`
}

// CategoryTag is a selectable project category.
type CategoryTag struct {
	Icon        string `json:"icon"`
	Name        string `json:"name"`
	ProjectType string `json:"project_type"`
	Header      string `json:"header"`
}

// LoaderTag is a mod loader the platform knows about.
type LoaderTag struct {
	Icon                  string   `json:"icon"`
	Name                  string   `json:"name"`
	SupportedProjectTypes []string `json:"supported_project_types"`
}

// GameVersionTag is a game version the platform tracks.
type GameVersionTag struct {
	Version     string    `json:"version"`
	VersionType string    `json:"version_type"`
	Date        time.Time `json:"date"`
	Major       bool      `json:"major"`
}

// LicenseTag is a license selectable for projects.
type LicenseTag struct {
	Short string `json:"short"`
	Name  string `json:"name"`
}

// DonationPlatformTag is a supported donation platform.
type DonationPlatformTag struct {
	Short string `json:"short"`
	Name  string `json:"name"`
}

// FileExt is an accepted image file extension for gallery uploads.
type FileExt string

const (
	FileExtPNG  FileExt = "png"
	FileExtJPG  FileExt = "jpg"
	FileExtJPEG FileExt = "jpeg"
	FileExtBMP  FileExt = "bmp"
	FileExtGIF  FileExt = "gif"
	FileExtWEBP FileExt = "webp"
)

// String returns the extension as it appears in content types and query
// parameters.
func (e FileExt) String() string {
	return string(e)
}

// ListVersionsOptions filters a project's version listing. A nil options
// value lists everything.
type ListVersionsOptions struct {
	// Loaders restricts results to versions supporting any of these loaders.
	Loaders []string
	// GameVersions restricts results to versions supporting any of these
	// game versions.
	GameVersions []string
	// Featured, when non-nil, restricts results to featured (or
	// non-featured) versions.
	Featured *bool
}
