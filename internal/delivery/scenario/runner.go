package scenario

import (
	"context"
	"fmt"
	"log/slog"

	"social/config"
	"social/internal/delivery"
	deliverycontext "social/internal/delivery/context"
	"social/internal/domain/entity"
	"social/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StepError records a scenario step that the usecases refused.
type StepError struct {
	Step string
	Err  error
}

func (e StepError) Error() string {
	return e.Step + ": " + e.Err.Error()
}

func (e StepError) Unwrap() error {
	return e.Err
}

// Report is the state reached after a run, keyed by scenario keys.
type Report struct {
	Users    map[string]*entity.User
	Posts    map[string]*entity.TextPost
	Failures []StepError
}

// RunnerParams holds dependencies for the Runner, injected by Fx.
type RunnerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Users  usecase.UserUsecase
	Posts  usecase.PostUsecase
}

// Runner replays a scenario file against the usecases.
type Runner struct {
	path        string
	stopOnError bool
	logger      *slog.Logger
	users       usecase.UserUsecase
	posts       usecase.PostUsecase
}

// NewRunner creates the scenario delivery.
func NewRunner(params RunnerParams) delivery.Delivery {
	return newRunner(params)
}

func newRunner(params RunnerParams) *Runner {
	return &Runner{
		path:        params.Config.Scenario.Path,
		stopOnError: params.Config.Scenario.StopOnError,
		logger:      params.Logger,
		users:       params.Users,
		posts:       params.Posts,
	}
}

// Serve loads the configured scenario, runs it and logs the outcome.
func (r *Runner) Serve(ctx context.Context) error {
	ctx = deliverycontext.WithRun(ctx, r.logger)
	logger := deliverycontext.GetLoggerOrDefault(ctx, r.logger)

	f, err := LoadFile(r.path)
	if err != nil {
		return err
	}
	logger.Info("Running scenario",
		slog.String("path", r.path),
		slog.Int("users", len(f.Users)),
		slog.Int("friendRequests", len(f.FriendRequests)),
		slog.Int("posts", len(f.Posts)),
	)

	report, err := r.Run(ctx, f)
	if err != nil {
		return err
	}
	r.logReport(logger, report)

	return nil
}

// Run executes every step of f. Refused steps are collected in the report,
// unless the runner stops on the first error.
func (r *Runner) Run(ctx context.Context, f *File) (*Report, error) {
	report := &Report{
		Users: make(map[string]*entity.User, len(f.Users)),
		Posts: make(map[string]*entity.TextPost, len(f.Posts)),
	}

	for _, spec := range f.Users {
		if err := r.registerUser(ctx, report, spec); err != nil {
			if err := r.fail(ctx, report, "user "+spec.Key, err); err != nil {
				return nil, err
			}
		}
	}
	for i, spec := range f.FriendRequests {
		if err := r.friendRequest(ctx, report, spec); err != nil {
			if err := r.fail(ctx, report, fmt.Sprintf("friendRequest[%d] %s->%s", i, spec.From, spec.To), err); err != nil {
				return nil, err
			}
		}
	}
	for _, spec := range f.Posts {
		if err := r.publish(ctx, report, spec); err != nil {
			if err := r.fail(ctx, report, "post "+spec.Key, err); err != nil {
				return nil, err
			}
		}
	}

	if err := r.refresh(ctx, report); err != nil {
		return nil, err
	}

	return report, nil
}

func (r *Runner) fail(ctx context.Context, report *Report, step string, err error) error {
	stepErr := StepError{Step: step, Err: err}
	if r.stopOnError {
		return stepErr
	}

	deliverycontext.GetLoggerOrDefault(ctx, r.logger).Warn("Scenario step refused",
		slog.String("step", step),
		slog.Any("error", err),
	)
	report.Failures = append(report.Failures, stepErr)

	return nil
}

func (r *Runner) registerUser(ctx context.Context, report *Report, spec UserSpec) error {
	if _, exists := report.Users[spec.Key]; exists {
		return errors.Errorf("duplicate user key %q", spec.Key)
	}

	input := usecase.RegisterUserInput{
		FirstName: spec.FirstName,
		LastName:  spec.LastName,
		Email:     spec.Email,
		PhotoURL:  spec.PhotoURL,
		About:     spec.About,
		Interests: spec.Interests,
	}
	if spec.Location != nil {
		input.Location = &usecase.LocationInput{
			City:    spec.Location.City,
			Region:  spec.Location.Region,
			Country: spec.Location.Country,
			Lat:     spec.Location.Lat,
			Long:    spec.Location.Long,
		}
	}
	if spec.Settings != nil {
		settings := entity.NewUserSettings(
			spec.Settings.AllowConnectionRequests,
			spec.Settings.AllowMessaging,
			spec.Settings.AllowMentions,
			spec.Settings.AllowNotifications,
		)
		input.Settings = &settings
	}

	user, err := r.users.RegisterUser(ctx, input)
	if err != nil {
		return err
	}
	report.Users[spec.Key] = user

	return nil
}

func (r *Runner) friendRequest(ctx context.Context, report *Report, spec FriendRequestSpec) error {
	from, err := userID(report, spec.From)
	if err != nil {
		return err
	}
	to, err := userID(report, spec.To)
	if err != nil {
		return err
	}

	input := usecase.FriendRequestInput{FromUserID: from, ToUserID: to}
	if err := r.users.SendFriendRequest(ctx, input); err != nil {
		return err
	}

	switch spec.Action {
	case ActionNone, "":
		return nil
	case ActionAccept:
		return r.users.AcceptFriendRequest(ctx, input)
	case ActionReject:
		return r.users.RejectFriendRequest(ctx, input)
	default:
		return errors.Errorf("unknown friend request action %q", spec.Action)
	}
}

func (r *Runner) publish(ctx context.Context, report *Report, spec PostSpec) error {
	if _, exists := report.Posts[spec.Key]; exists {
		return errors.Errorf("duplicate post key %q", spec.Key)
	}
	authorID, err := userID(report, spec.Author)
	if err != nil {
		return err
	}

	post, err := r.posts.CreatePost(ctx, usecase.CreatePostInput{
		AuthorID: authorID,
		Title:    spec.Title,
		Message:  spec.Message,
	})
	if err != nil {
		return err
	}
	report.Posts[spec.Key] = post

	for i, comment := range spec.Comments {
		commenterID, err := userID(report, comment.Author)
		if err == nil {
			_, err = r.posts.AddComment(ctx, usecase.CommentInput{
				PostID:   post.ID(),
				AuthorID: commenterID,
				Message:  comment.Message,
			})
		}
		if err != nil {
			if err := r.fail(ctx, report, fmt.Sprintf("post %s comment[%d]", spec.Key, i), err); err != nil {
				return err
			}
		}
	}
	for i, interaction := range spec.Interactions {
		readerID, err := userID(report, interaction.Author)
		if err == nil {
			err = r.posts.React(ctx, usecase.InteractionInput{
				PostID:   post.ID(),
				AuthorID: readerID,
				Type:     entity.InteractionType(interaction.Type),
			})
		}
		if err != nil {
			if err := r.fail(ctx, report, fmt.Sprintf("post %s interaction[%d]", spec.Key, i), err); err != nil {
				return err
			}
		}
	}

	return nil
}

// refresh reloads every aggregate so the report shows the stored state.
func (r *Runner) refresh(ctx context.Context, report *Report) error {
	for key, user := range report.Users {
		stored, err := r.users.GetUser(ctx, user.ID())
		if err != nil {
			return errors.Wrapf(err, "reload user %s", key)
		}
		report.Users[key] = stored
	}
	for key, post := range report.Posts {
		stored, err := r.posts.GetPost(ctx, post.ID())
		if err != nil {
			return errors.Wrapf(err, "reload post %s", key)
		}
		report.Posts[key] = stored
	}

	return nil
}

func (r *Runner) logReport(logger *slog.Logger, report *Report) {
	for key, user := range report.Users {
		logger.Info("User",
			slog.String("key", key),
			slog.String("name", user.UserInfo().Name().FullName()),
			slog.Int("friends", user.NumberOfFriends()),
			slog.Int("pending", len(user.PendingFriendRequests())),
		)
		for _, friendID := range user.Friends() {
			if km, ok := distanceKm(report, user, friendID); ok {
				logger.Info("Friend distance",
					slog.String("key", key),
					slog.String("friendID", friendID.String()),
					slog.Float64("km", km),
				)
			}
		}
	}
	for key, post := range report.Posts {
		logger.Info("Post",
			slog.String("key", key),
			slog.String("title", post.Title()),
			slog.Int("comments", post.NumberOfComments()),
			slog.Int("interactions", post.NumberOfInteractions()),
			slog.Int("likes", post.NumberOfLikes()),
			slog.Int("loves", post.NumberOfLoves()),
			slog.Int("laughs", post.NumberOfLaughs()),
		)
	}
	logger.Info("Scenario finished", slog.Int("failures", len(report.Failures)))
}

// distanceKm is the great-circle distance between user and a friend, when
// both have coordinates.
func distanceKm(report *Report, user *entity.User, friendID entity.UserID) (float64, bool) {
	here, ok := user.UserInfo().Location()
	if !ok {
		return 0, false
	}
	for _, other := range report.Users {
		if other.ID() != friendID {
			continue
		}
		there, ok := other.UserInfo().Location()
		if !ok {
			return 0, false
		}
		meters, ok := here.DistanceTo(there)

		return meters / 1000, ok
	}

	return 0, false
}

func userID(report *Report, key string) (entity.UserID, error) {
	user, ok := report.Users[key]
	if !ok {
		return entity.UserID{}, errors.Errorf("unknown user key %q", key)
	}

	return user.ID(), nil
}
