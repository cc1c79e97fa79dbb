package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"quicksurvey/internal/model"
)

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "quicksurvey"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(dbName)
	userColl := db.Collection("users")
	surveyColl := db.Collection("surveys")

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}

	owner := model.User{
		Email:        "demo@quicksurvey.local",
		Name:         "Demo Owner",
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	ownerResult, err := userColl.InsertOne(ctx, owner)
	if err != nil {
		log.Fatalf("Failed to insert demo owner: %v", err)
	}
	ownerID := ownerResult.InsertedID.(primitive.ObjectID).Hex()

	survey := model.Survey{
		OwnerID:     ownerID,
		Title:       "Coffee Shop Feedback",
		Description: "Tell us about your last visit so we can do better.",
		Status:      model.SurveyStatusPublished,
		Questions: []model.Question{
			{
				ID:       uuid.NewString(),
				Title:    "How satisfied were you with your visit?",
				Type:     model.QuestionTypeLinearScale,
				Required: true,
				Min:      1,
				Max:      5,
				MinLabel: "Very unsatisfied",
				MaxLabel: "Very satisfied",
			},
			{
				ID:       uuid.NewString(),
				Title:    "What did you order?",
				Type:     model.QuestionTypeMultipleChoice,
				Required: true,
				Options: []model.Option{
					{ID: uuid.NewString(), Text: "Espresso drink"},
					{ID: uuid.NewString(), Text: "Drip coffee"},
					{ID: uuid.NewString(), Text: "Tea"},
					{ID: uuid.NewString(), Text: "Something else"},
				},
			},
			{
				ID:    uuid.NewString(),
				Title: "Which of these did you notice during your visit?",
				Type:  model.QuestionTypeCheckboxes,
				Options: []model.Option{
					{ID: uuid.NewString(), Text: "Friendly staff"},
					{ID: uuid.NewString(), Text: "Clean seating area"},
					{ID: uuid.NewString(), Text: "Fast service"},
					{ID: uuid.NewString(), Text: "Good music"},
				},
			},
			{
				ID:    uuid.NewString(),
				Title: "When did you visit?",
				Type:  model.QuestionTypeDate,
			},
			{
				ID:    uuid.NewString(),
				Title: "Anything else you'd like to share?",
				Type:  model.QuestionTypeParagraph,
			},
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	surveyResult, err := surveyColl.InsertOne(ctx, survey)
	if err != nil {
		log.Fatalf("Failed to insert survey: %v", err)
	}
	surveyID := surveyResult.InsertedID.(primitive.ObjectID).Hex()

	fmt.Printf("Created demo owner '%s' (password: demo-password)\n", owner.Email)
	fmt.Printf("Created published survey '%s' (id %s)\n", survey.Title, surveyID)
}
