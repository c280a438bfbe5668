package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/skinaid/skinaid-web/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	firstName string
	lastName  string
	email     string
	password  string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		firstName: "Test",
		lastName:  "User",
		email:     fmt.Sprintf("testuser_%s@example.com", uuid.New().String()[:8]),
		password:  "testpassword123",
	}
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// WithName sets first and last name
func (b *UserBuilder) WithName(firstName, lastName string) *UserBuilder {
	b.firstName = firstName
	b.lastName = lastName
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		FirstName:    b.firstName,
		LastName:     b.lastName,
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// AuthResponse matches the API auth response
type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
	User    struct {
		ID        string `json:"id"`
		FirstName string `json:"firstName"`
		Email     string `json:"email"`
	} `json:"user"`
}

// BuildAndAuthenticate creates a user via the API and returns the user and a
// login token (the long-lived one, matching what the SPA holds).
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	regBody, _ := json.Marshal(map[string]string{
		"firstName": b.firstName,
		"lastName":  b.lastName,
		"email":     b.email,
		"password":  b.password,
	})
	resp, err := http.Post(ts.APIURL("/auth/register"), "application/json", bytes.NewBuffer(regBody))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("unexpected register status code: %d", resp.StatusCode)
	}

	loginBody, _ := json.Marshal(map[string]string{
		"email":    b.email,
		"password": b.password,
	})
	loginResp, err := http.Post(ts.APIURL("/auth/login"), "application/json", bytes.NewBuffer(loginBody))
	if err != nil {
		t.Fatalf("failed to log in: %v", err)
	}
	defer loginResp.Body.Close()
	if loginResp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected login status code: %d", loginResp.StatusCode)
	}

	var authResp AuthResponse
	if err := json.NewDecoder(loginResp.Body).Decode(&authResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	userID, _ := uuid.Parse(authResp.User.ID)
	user := &domain.User{
		ID:        userID,
		FirstName: authResp.User.FirstName,
		Email:     authResp.User.Email,
	}

	return user, authResp.Token
}

// ConversationBuilder creates test conversations with a builder pattern
type ConversationBuilder struct {
	owner    *domain.User
	messages []domain.Message
}

// NewConversationBuilder creates a new ConversationBuilder with default values
func NewConversationBuilder() *ConversationBuilder {
	return &ConversationBuilder{
		messages: []domain.Message{
			{Sender: domain.SenderUser, Content: "What does this rash mean?"},
			{Sender: domain.SenderBot, Content: "It could be several things; please describe it."},
		},
	}
}

// WithOwner sets the owning user
func (b *ConversationBuilder) WithOwner(owner *domain.User) *ConversationBuilder {
	b.owner = owner
	return b
}

// WithMessages replaces the default message sequence
func (b *ConversationBuilder) WithMessages(messages ...domain.Message) *ConversationBuilder {
	b.messages = messages
	return b
}

// Build creates the conversation in the database
func (b *ConversationBuilder) Build(t *testing.T, db *gorm.DB) *domain.Conversation {
	t.Helper()

	if b.owner == nil {
		owner, _ := NewUserBuilder().Build(t, db)
		b.owner = owner
	}

	conversation := &domain.Conversation{
		ID:        uuid.New(),
		UserID:    b.owner.ID,
		Messages:  b.messages,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := db.Create(conversation).Error; err != nil {
		t.Fatalf("failed to create conversation: %v", err)
	}

	return conversation
}

// ClassificationBuilder creates test classification records
type ClassificationBuilder struct {
	owner      *domain.User
	prediction string
	imageURL   string
}

// NewClassificationBuilder creates a new ClassificationBuilder with default values
func NewClassificationBuilder() *ClassificationBuilder {
	return &ClassificationBuilder{
		prediction: "Eczema Photos",
		imageURL:   "https://storage.example.com/uploads/skin.jpg",
	}
}

// WithOwner sets the owning user
func (b *ClassificationBuilder) WithOwner(owner *domain.User) *ClassificationBuilder {
	b.owner = owner
	return b
}

// WithPrediction sets the prediction label
func (b *ClassificationBuilder) WithPrediction(prediction string) *ClassificationBuilder {
	b.prediction = prediction
	return b
}

// Build creates the classification record in the database
func (b *ClassificationBuilder) Build(t *testing.T, db *gorm.DB) *domain.Classification {
	t.Helper()

	if b.owner == nil {
		owner, _ := NewUserBuilder().Build(t, db)
		b.owner = owner
	}

	classification := &domain.Classification{
		ID:         uuid.New(),
		UserID:     b.owner.ID,
		Prediction: b.prediction,
		ImageURL:   b.imageURL,
		CreatedAt:  time.Now(),
	}

	if err := db.Create(classification).Error; err != nil {
		t.Fatalf("failed to create classification: %v", err)
	}

	return classification
}
