package modrinth

import (
	"context"
	"net/http"
)

// ProjectsClient provides access to project resources.
type ProjectsClient interface {
	// Get returns the project with the given id or slug.
	Get(ctx context.Context, id string) (*Project, error)

	// GetMultiple returns the projects with the given ids.
	GetMultiple(ctx context.Context, ids []string) ([]Project, error)

	// GetRandom returns count random projects.
	GetRandom(ctx context.Context, count int) ([]Project, error)

	// CheckExists reports whether id refers to an existing project and
	// returns the project's canonical id.
	CheckExists(ctx context.Context, id string) (string, error)

	// GetDependencies returns the dependency closure of a project.
	GetDependencies(ctx context.Context, id string) (*ProjectDependencies, error)

	// Follow follows a project. Requires authentication.
	Follow(ctx context.Context, id string) error

	// Unfollow unfollows a project. Requires authentication.
	Unfollow(ctx context.Context, id string) error

	// AddGalleryImage uploads an image to a project's gallery. The image
	// data may be at most 5 MiB; the limit is enforced by the remote
	// service. Requires authentication.
	AddGalleryImage(ctx context.Context, id string, image []byte, ext FileExt, featured bool, title, description *string) error
}

// VersionsClient provides access to version resources.
type VersionsClient interface {
	// ListVersions returns the versions of a project, optionally filtered.
	ListVersions(ctx context.Context, projectID string, opts *ListVersionsOptions) ([]Version, error)

	// Get returns the version with the given id.
	Get(ctx context.Context, id string) (*Version, error)

	// GetMultiple returns the versions with the given ids.
	GetMultiple(ctx context.Context, ids []string) ([]Version, error)

	// GetFromHash returns the version containing the file with the given
	// SHA-1 hash.
	GetFromHash(ctx context.Context, sha1 string) (*Version, error)
}

// UsersClient provides access to user resources.
type UsersClient interface {
	// Get returns the user with the given id or username.
	Get(ctx context.Context, id string) (*User, error)

	// GetCurrent returns the user the configured token belongs to.
	// Requires authentication.
	GetCurrent(ctx context.Context) (*User, error)

	// GetMultiple returns the users with the given ids.
	GetMultiple(ctx context.Context, ids []string) ([]User, error)

	// GetProjects returns the projects of a user.
	GetProjects(ctx context.Context, id string) ([]Project, error)

	// GetFollowedProjects returns the projects a user follows. Requires
	// authentication.
	GetFollowedProjects(ctx context.Context, id string) ([]Project, error)

	// GetNotifications returns a user's notifications. Requires
	// authentication.
	GetNotifications(ctx context.Context, id string) ([]Notification, error)
}

// TagsClient provides access to the platform's tag lists.
type TagsClient interface {
	Categories(ctx context.Context) ([]CategoryTag, error)
	Loaders(ctx context.Context) ([]LoaderTag, error)
	GameVersions(ctx context.Context) ([]GameVersionTag, error)
	Licenses(ctx context.Context) ([]LicenseTag, error)
	DonationPlatforms(ctx context.Context) ([]DonationPlatformTag, error)
	ReportTypes(ctx context.Context) ([]string, error)
}

// Client provides access to all resource-specific clients.
type Client interface {
	Projects() ProjectsClient
	Versions() VersionsClient
	Users() UsersClient
	Tags() TagsClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a modrinth.Client.
// The config is read once at construction; the resulting client never
// mutates it, so a single client may be shared freely across goroutines.
type Config struct {
	// AppName identifies the application to the remote service and is
	// required. It forms the first segment of the user agent.
	AppName string

	// AppVersion, when set, is appended to the user agent as
	// "name/version".
	AppVersion string

	// Contact, when set, is appended to the user agent in parentheses.
	// An email address or project URL is customary.
	Contact string

	// UserAgent overrides the user agent assembled from AppName,
	// AppVersion, and Contact.
	UserAgent string

	// Token is the personal access token attached to every request when
	// present. Operations documented as requiring authentication fail
	// remotely with 401 when it is absent; no local check is made.
	Token string

	// BaseURL overrides the production API root. Mainly useful for the
	// staging environment and tests.
	BaseURL string

	// HTTPClient overrides the underlying HTTP client. Timeouts and
	// connection pooling are whatever this client provides.
	HTTPClient *http.Client

	// Logger receives debug logs when Debug is set.
	Logger Logger

	// Debug enables request/response logging through Logger.
	Debug bool
}
