package gql

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blooddonor/internal/domain/entity"
	"blooddonor/internal/domain/repository/mocks"
	"blooddonor/internal/infrastructure/metrics"
	"blooddonor/internal/infrastructure/token"
	"blooddonor/internal/usecase"
)

type fixture struct {
	users     *mocks.MockUserRepository
	donations *mocks.MockDonationRepository
	previous  *mocks.MockPreviousDonationRepository
	registry  *prometheus.Registry
	schema    graphql.Schema
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		users:     new(mocks.MockUserRepository),
		donations: new(mocks.MockDonationRepository),
		previous:  new(mocks.MockPreviousDonationRepository),
		registry:  prometheus.NewRegistry(),
	}

	userUC := usecase.NewUserUseCase(f.users, f.previous, token.NewIssuer("test-secret"), "https://avatar.example/public")
	donationUC := usecase.NewDonationUseCase(f.donations, f.previous)

	schema, err := NewSchema(NewResolver(userUC, donationUC, metrics.NewRecorder(f.registry)))
	require.NoError(t, err)
	f.schema = schema
	return f
}

func (f *fixture) do(query string) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:        f.schema,
		RequestString: query,
		Context:       context.Background(),
	})
}

func TestUsersResolvesPreviousDonationsPerUser(t *testing.T) {
	f := newFixture(t)

	f.users.On("List", mock.Anything).Return([]*entity.User{
		{ID: "u1", FullName: "Asha Rao"},
		{ID: "u2", FullName: "Ravi Kumar"},
	}, nil)
	f.previous.On("ListByUser", mock.Anything, "u1").Return([]*entity.PreviousDonation{
		{ID: "p1", UserID: "u1", DonationDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}, nil).Once()
	f.previous.On("ListByUser", mock.Anything, "u2").Return([]*entity.PreviousDonation{}, nil).Once()

	result := f.do(`{ users { id fullName previousDonations { id donationDate } } }`)
	require.Empty(t, result.Errors)

	users := result.Data.(map[string]interface{})["users"].([]interface{})
	require.Len(t, users, 2)

	first := users[0].(map[string]interface{})
	assert.Equal(t, "u1", first["id"])
	firstPrevious := first["previousDonations"].([]interface{})
	require.Len(t, firstPrevious, 1)
	assert.Equal(t, "2024-03-01T00:00:00Z", firstPrevious[0].(map[string]interface{})["donationDate"])

	second := users[1].(map[string]interface{})
	assert.Empty(t, second["previousDonations"])
	assert.NotNil(t, second["previousDonations"])

	f.previous.AssertNumberOfCalls(t, "ListByUser", 2)
}

func TestPreviousDonationsNotFetchedUnlessSelected(t *testing.T) {
	f := newFixture(t)

	f.users.On("List", mock.Anything).Return([]*entity.User{{ID: "u1"}}, nil)

	result := f.do(`{ users { id } }`)
	require.Empty(t, result.Errors)
	f.previous.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
}

func TestUserNotFoundIsNull(t *testing.T) {
	f := newFixture(t)

	f.users.On("GetByID", mock.Anything, "missing").Return(nil, nil)

	result := f.do(`{ user(id: "missing") { id } }`)
	require.Empty(t, result.Errors)
	assert.Nil(t, result.Data.(map[string]interface{})["user"])
}

func TestUserAddressAndCoords(t *testing.T) {
	f := newFixture(t)

	f.users.On("GetByID", mock.Anything, "u1").Return(&entity.User{
		ID:        "u1",
		BloodType: entity.BloodTypeABNegative,
		Address: entity.Address{
			City:    "Pune",
			Pincode: "411001",
			Coords:  &entity.Coords{Lat: 18.52, Lng: 73.85},
		},
	}, nil)
	f.users.On("GetByID", mock.Anything, "u2").Return(&entity.User{ID: "u2"}, nil)

	result := f.do(`{
		a: user(id: "u1") { bloodType token address { city pincode coords { lat lng } } coords { lat } }
		b: user(id: "u2") { address { coords { lat } } coords { lat } }
	}`)
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	a := data["a"].(map[string]interface{})
	assert.Equal(t, "AB-", a["bloodType"])
	assert.Nil(t, a["token"])
	address := a["address"].(map[string]interface{})
	assert.Equal(t, "Pune", address["city"])
	assert.Equal(t, 18.52, address["coords"].(map[string]interface{})["lat"])
	assert.Equal(t, 18.52, a["coords"].(map[string]interface{})["lat"])

	b := data["b"].(map[string]interface{})
	assert.Nil(t, b["coords"])
	assert.Nil(t, b["address"].(map[string]interface{})["coords"])
}

func TestRegisterValidationErrorCarriesExtensions(t *testing.T) {
	f := newFixture(t)

	result := f.do(`mutation {
		register(firebaseUID: "uid", fullName: "Asha", email: "  ", phone: "1", age: "20",
			gender: "f", bloodType: "O+", city: "Pune", pincode: "411001") { id }
	}`)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "All fields are required: email", result.Errors[0].Message)
	assert.Equal(t, "VALIDATION", result.Errors[0].Extensions["code"])
	assert.Nil(t, result.Data.(map[string]interface{})["register"])
	f.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddUserCoordsUnknownUser(t *testing.T) {
	f := newFixture(t)

	f.users.On("GetByID", mock.Anything, "ghost").Return(nil, nil)

	result := f.do(`mutation { addUserCoords(id: "ghost", lat: 1.5, lng: 2) { id } }`)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "User not found", result.Errors[0].Message)
	assert.Equal(t, "NOT_FOUND", result.Errors[0].Extensions["code"])
}

func TestFailingFieldDoesNotAbortSiblings(t *testing.T) {
	f := newFixture(t)

	f.users.On("GetByID", mock.Anything, "u1").Return(nil, stderrors.New("connection reset"))
	f.donations.On("List", mock.Anything).Return([]*entity.Donation{
		{ID: "d1", UserID: "u1", DonationType: entity.DonationTypeRequestInArea, Status: entity.DonationStatusPending},
	}, nil)

	result := f.do(`{ user(id: "u1") { id } donations { id status receiverId city bloodType } }`)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "connection reset", result.Errors[0].Message)
	assert.Equal(t, []interface{}{"user"}, result.Errors[0].Path)

	data := result.Data.(map[string]interface{})
	assert.Nil(t, data["user"])
	donations := data["donations"].([]interface{})
	require.Len(t, donations, 1)
	donation := donations[0].(map[string]interface{})
	assert.Equal(t, "pending", donation["status"])
	assert.Nil(t, donation["receiverId"])
	assert.Nil(t, donation["city"])
	assert.Nil(t, donation["bloodType"])
}

func TestDonationsInYourArea(t *testing.T) {
	f := newFixture(t)

	f.donations.On("ListByCity", mock.Anything, "Pune").Return([]*entity.Donation{
		{ID: "d1", City: "Pune", DonationType: entity.DonationTypeRequestInArea},
	}, nil)

	result := f.do(`{ donationsInYourArea(city: "Pune") { id city donationType } }`)
	require.Empty(t, result.Errors)

	donations := result.Data.(map[string]interface{})["donationsInYourArea"].([]interface{})
	require.Len(t, donations, 1)
	assert.Equal(t, "request-in-your-area", donations[0].(map[string]interface{})["donationType"])
}

func TestUpdateDonationUnknownIDIsNull(t *testing.T) {
	f := newFixture(t)

	f.donations.On("Update", mock.Anything, mock.MatchedBy(func(d *entity.Donation) bool {
		return d.ID == "nope" && d.UserID == "u1" && d.DonationType == entity.DonationTypeRequestForDonor
	})).Return(nil, nil)

	result := f.do(`mutation {
		updateDonation(id: "nope", userId: "u1", donationDate: "2024-05-01", donationType: "request-for-donor") { id }
	}`)
	require.Empty(t, result.Errors)
	assert.Nil(t, result.Data.(map[string]interface{})["updateDonation"])
}

func TestSingleFieldSetters(t *testing.T) {
	f := newFixture(t)

	f.users.On("UpdateCity", mock.Anything, "u1", "Mumbai").Return(&entity.User{
		ID:      "u1",
		Address: entity.Address{City: "Mumbai"},
	}, nil)
	f.users.On("UpdateAge", mock.Anything, "nobody", "30").Return(nil, nil)

	result := f.do(`mutation {
		city: updateCity(id: "u1", city: "Mumbai") { address { city } }
		age: updateAge(id: "nobody", age: "30") { id }
	}`)
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	assert.Equal(t, "Mumbai", data["city"].(map[string]interface{})["address"].(map[string]interface{})["city"])
	assert.Nil(t, data["age"])
}

func TestResolverMetrics(t *testing.T) {
	f := newFixture(t)

	f.users.On("List", mock.Anything).Return([]*entity.User{}, nil)
	f.users.On("GetByID", mock.Anything, "u1").Return(nil, stderrors.New("boom"))

	f.do(`{ users { id } }`)
	f.do(`{ user(id: "u1") { id } }`)

	assert.Equal(t, 2, testutil.CollectAndCount(f.registry, "blooddonor_graphql_resolver_calls_total"))
	assert.Equal(t, 2, testutil.CollectAndCount(f.registry, "blooddonor_graphql_resolver_duration_seconds"))
}
