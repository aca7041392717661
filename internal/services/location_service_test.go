package services

import (
	"context"
	"errors"
	"testing"

	"expense-insights/internal/models"
	"expense-insights/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type LocationServiceSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	locations *repository_mocks.MockLocationRepositoryInterface
	service   LocationServiceInterface
	ctx       context.Context
}

func TestLocationServiceSuite(t *testing.T) {
	suite.Run(t, new(LocationServiceSuite))
}

func (s *LocationServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.locations = repository_mocks.NewMockLocationRepositoryInterface(s.ctrl)
	s.service = NewLocationService(s.locations)
	s.ctx = context.Background()
}

func (s *LocationServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *LocationServiceSuite) TestListCountries() {
	s.locations.EXPECT().ListCountries(s.ctx).Return([]string{"Germany", "India"}, nil)

	countries, err := s.service.ListCountries(s.ctx)

	s.Require().NoError(err)
	s.Equal([]string{"Germany", "India"}, countries)
}

func (s *LocationServiceSuite) TestListCountries_EmptyIsNotNil() {
	s.locations.EXPECT().ListCountries(s.ctx).Return(nil, nil)

	countries, err := s.service.ListCountries(s.ctx)

	s.Require().NoError(err)
	s.NotNil(countries)
	s.Empty(countries)
}

func (s *LocationServiceSuite) TestListStates() {
	s.locations.EXPECT().ListStates(s.ctx, "India").Return([]string{"Karnataka", "Maharashtra"}, nil)

	states, err := s.service.ListStates(s.ctx, " India")

	s.Require().NoError(err)
	s.Equal([]string{"Karnataka", "Maharashtra"}, states)
}

func (s *LocationServiceSuite) TestListStates_RequiresCountry() {
	_, err := s.service.ListStates(s.ctx, " ")

	s.ErrorIs(err, models.ErrCountryRequired)
}

func (s *LocationServiceSuite) TestListCities() {
	s.locations.EXPECT().ListCities(s.ctx, "India", "Karnataka").Return([]string{"Bengaluru"}, nil)

	cities, err := s.service.ListCities(s.ctx, "India", "Karnataka ")

	s.Require().NoError(err)
	s.Equal([]string{"Bengaluru"}, cities)
}

func (s *LocationServiceSuite) TestListCities_RequiresCountryAndState() {
	_, err := s.service.ListCities(s.ctx, "", "Karnataka")
	s.ErrorIs(err, models.ErrCountryRequired)

	_, err = s.service.ListCities(s.ctx, "India", "")
	s.ErrorIs(err, ErrStateRequired)
}

func (s *LocationServiceSuite) TestRepositoryErrorsAreWrapped() {
	dbErr := errors.New("connection reset")
	s.locations.EXPECT().ListStates(s.ctx, "India").Return(nil, dbErr)

	_, err := s.service.ListStates(s.ctx, "India")

	s.ErrorIs(err, ErrLocationLookupFailed)
	s.ErrorIs(err, dbErr)
}
