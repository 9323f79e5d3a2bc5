// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "social/internal/delivery/context"
	"social/internal/domain/entity"
	domainerrors "social/internal/domain/errors"
	"social/internal/domain/kernel"
	"social/internal/domain/repository"
	"social/internal/domain/service"
	"social/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ErrEmailAlreadyRegistered is returned when registering an email that belongs to another user.
var ErrEmailAlreadyRegistered = errors.New("email already registered")

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	formats  service.FormatValidator
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Formats  service.FormatValidator
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		formats:  params.Formats,
		logger:   params.Logger,
	}
}

// log returns a run-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser builds the profile value objects, checks the email is free and stores the user.
func (srv *userService) RegisterUser(ctx context.Context, input usecase.RegisterUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	info, err := srv.buildUserInfo(input)
	if err != nil {
		srv.log(ctx).Warn("Invalid profile", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	_, err = srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, ErrEmailAlreadyRegistered
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	settings := entity.DefaultUserSettings()
	if input.Settings != nil {
		settings = *input.Settings
	}

	user, err := entity.NewUser(entity.NewUserID(), info, settings)
	if err != nil {
		return nil, err
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered",
		slog.String("userID", user.ID().String()),
		slog.String("fullName", info.Name().FullName()),
	)

	return user, nil
}

func (srv *userService) buildUserInfo(input usecase.RegisterUserInput) (entity.GeneralUserInfo, error) {
	name, err := kernel.NewNameFromPointers(input.FirstName, input.LastName)
	if err != nil {
		return entity.GeneralUserInfo{}, err
	}

	params := entity.GeneralUserInfoParams{
		Name:      name,
		PhotoURL:  input.PhotoURL,
		Email:     input.Email,
		About:     input.About,
		Interests: input.Interests,
	}
	if input.Location != nil {
		location, err := buildLocation(*input.Location)
		if err != nil {
			return entity.GeneralUserInfo{}, err
		}
		params.Location = &location
	}

	return entity.NewGeneralUserInfo(srv.formats, params)
}

func buildLocation(input usecase.LocationInput) (entity.Location, error) {
	switch {
	case input.Lat == nil && input.Long == nil:
		return entity.NewLocation(input.City, input.Region, input.Country), nil
	case input.Lat == nil || input.Long == nil:
		return entity.Location{}, domainerrors.ErrInvalidCoordinates.WithDetails("lat and long must be given together")
	default:
		return entity.NewLocationWithCoordinates(input.City, input.Region, input.Country, *input.Lat, *input.Long)
	}
}

// GetUser loads a user by id.
func (srv *userService) GetUser(ctx context.Context, userID entity.UserID) (*entity.User, error) {
	return srv.findUser(ctx, userID)
}

// SendFriendRequest records the sender on the recipient's pending list.
// The domain checks run before the sender is looked up.
func (srv *userService) SendFriendRequest(ctx context.Context, input usecase.FriendRequestInput) error {
	recipient, err := srv.findUser(ctx, input.ToUserID)
	if err != nil {
		return err
	}
	if err := recipient.SendFriendRequestToUser(input.FromUserID); err != nil {
		srv.log(ctx).Info("Friend request refused",
			slog.String("from", input.FromUserID.String()),
			slog.String("to", input.ToUserID.String()),
			slog.Any("error", err),
		)

		return err
	}
	if _, err := srv.findUser(ctx, input.FromUserID); err != nil {
		return err
	}

	if err := srv.userRepo.Update(ctx, recipient); err != nil {
		return errors.Wrap(err, "failed to update recipient")
	}

	srv.log(ctx).Info("Friend request sent",
		slog.String("from", input.FromUserID.String()),
		slog.String("to", input.ToUserID.String()),
	)

	return nil
}

// AcceptFriendRequest moves the sender from the recipient's pending list to its friends.
func (srv *userService) AcceptFriendRequest(ctx context.Context, input usecase.FriendRequestInput) error {
	return srv.answerFriendRequest(ctx, input, "accepted", (*entity.User).AcceptFriendRequest)
}

// RejectFriendRequest drops the sender from the recipient's pending list.
func (srv *userService) RejectFriendRequest(ctx context.Context, input usecase.FriendRequestInput) error {
	return srv.answerFriendRequest(ctx, input, "rejected", (*entity.User).RejectFriendRequest)
}

func (srv *userService) answerFriendRequest(
	ctx context.Context,
	input usecase.FriendRequestInput,
	outcome string,
	answer func(*entity.User, entity.UserID) error,
) error {
	recipient, err := srv.findUser(ctx, input.ToUserID)
	if err != nil {
		return err
	}
	if err := answer(recipient, input.FromUserID); err != nil {
		return err
	}
	if err := srv.userRepo.Update(ctx, recipient); err != nil {
		return errors.Wrap(err, "failed to update recipient")
	}

	srv.log(ctx).Info("Friend request "+outcome,
		slog.String("from", input.FromUserID.String()),
		slog.String("to", input.ToUserID.String()),
		slog.Int("friends", recipient.NumberOfFriends()),
	)

	return nil
}

// UpdateSettings replaces the user's account settings.
func (srv *userService) UpdateSettings(ctx context.Context, userID entity.UserID, settings entity.UserSettings) error {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return err
	}

	user.ChangeAccountSettings(settings)
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update user settings")
	}

	return nil
}

// AddInterest adds an interest to the user's profile and stores it when it changed.
func (srv *userService) AddInterest(ctx context.Context, userID entity.UserID, interest string) (*entity.User, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	info, added := user.UserInfo().TryAddInterest(interest)
	if !added {
		return user, nil
	}

	user.ChangeUserInfo(info)
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user interests")
	}

	return user, nil
}

func (srv *userService) findUser(ctx context.Context, userID entity.UserID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrNotFound.WithField("userId").WithDetails(userID.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return user, nil
}
