package models

import (
	"github.com/hridaya423/shiba-sub001/internal/airtable"
)

// Airtable field names.
const (
	FieldUserToken    = "token"
	FieldUserSlackID  = "slack id"
	FieldUserHours    = "hoursSpent"
	FieldUserOnboard  = "hasOnboarded"
	FieldUserReferral = "referral"
	FieldUserEmail    = "email"
	FieldUserName     = "githubUsername"

	FieldOrderID      = "OrderID"
	FieldOrderStatus  = "Status"
	FieldOrderItem    = "Shop Item"
	FieldOrderAmount  = "Amount Spent"
	FieldOrderSpentBy = "Spent By"
	FieldOrderCreated = "Created"

	FieldShopName         = "Name"
	FieldShopCost         = "Cost"
	FieldShopDescription  = "Description"
	FieldShopSold         = "Sold"
	FieldShopInitialStock = "InitialStock"
	FieldShopInStock      = "InStock"
	FieldShopImages       = "Images"

	FieldPlaytestID      = "PlaytestId"
	FieldPlaytestStatus  = "status"
	FieldPlaytestPlayer  = "Player"
	FieldPlaytestGame    = "GameToTest"
	FieldFunScore        = "Fun Score"
	FieldArtScore        = "Art Score"
	FieldCreativityScore = "Creativity Score"
	FieldAudioScore      = "Audio Score"
	FieldMoodScore       = "Mood Score"
	FieldFeedback        = "Feedback"
	FieldPlaytimeSeconds = "Playtime Seconds"

	PlaytestStatusComplete = "Complete"

	FieldGameName     = "Name"
	FieldGameProjects = "Hackatime Projects"

	FieldPostSlackID = "slack id"
	FieldPostHours   = "HoursSpent"
	FieldPostCreated = "Created At"
)

// User is a row of the Users table.
type User struct {
	ID             string  `json:"id"`
	SlackID        string  `json:"slackId"`
	Email          string  `json:"email,omitempty"`
	GithubUsername string  `json:"githubUsername,omitempty"`
	HoursSpent     float64 `json:"hoursSpent"`
	HasOnboarded   bool    `json:"hasOnboarded"`
	Referral       string  `json:"referral,omitempty"`
	CreatedTime    string  `json:"createdTime,omitempty"`
}

func UserFromRecord(r airtable.Record) User {
	return User{
		ID:             r.ID,
		SlackID:        r.String(FieldUserSlackID),
		Email:          r.String(FieldUserEmail),
		GithubUsername: r.String(FieldUserName),
		HoursSpent:     r.Float(FieldUserHours),
		HasOnboarded:   r.Bool(FieldUserOnboard),
		Referral:       r.String(FieldUserReferral),
		CreatedTime:    r.CreatedTime,
	}
}

// ShopItem is a row of the shop table, normalized for the catalogue.
type ShopItem struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Cost         float64  `json:"cost"`
	Description  string   `json:"description"`
	Sold         int      `json:"sold"`
	InitialStock int      `json:"initialStock"`
	InStock      int      `json:"inStock"`
	Images       []string `json:"images"`
}

func ShopItemFromRecord(r airtable.Record) ShopItem {
	images := r.Attachments(FieldShopImages)
	if images == nil {
		images = []string{}
	}
	return ShopItem{
		ID:           r.ID,
		Name:         r.String(FieldShopName),
		Cost:         r.Float(FieldShopCost),
		Description:  r.String(FieldShopDescription),
		Sold:         r.Int(FieldShopSold),
		InitialStock: r.Int(FieldShopInitialStock),
		InStock:      r.Int(FieldShopInStock),
		Images:       images,
	}
}

// Order is a row of the Orders table.
type Order struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"orderId"`
	Status      string    `json:"status"`
	ShopItemID  string    `json:"shopItemId"`
	AmountSpent float64   `json:"amountSpent"`
	CreatedTime string    `json:"createdTime"`
	ShopItem    *ShopItem `json:"shopItem"`
}

func OrderFromRecord(r airtable.Record) Order {
	created := r.String(FieldOrderCreated)
	if created == "" {
		created = r.CreatedTime
	}
	return Order{
		ID:          r.ID,
		OrderID:     r.String(FieldOrderID),
		Status:      r.String(FieldOrderStatus),
		ShopItemID:  r.String(FieldOrderItem),
		AmountSpent: r.Float(FieldOrderAmount),
		CreatedTime: created,
	}
}

// PlaytestTicket is a row of the playtest tickets table.
type PlaytestTicket struct {
	ID              string   `json:"id"`
	PlaytestID      string   `json:"playtestId"`
	Status          string   `json:"status"`
	GameID          string   `json:"gameId,omitempty"`
	FunScore        *float64 `json:"funScore"`
	ArtScore        *float64 `json:"artScore"`
	CreativityScore *float64 `json:"creativityScore"`
	AudioScore      *float64 `json:"audioScore"`
	MoodScore       *float64 `json:"moodScore"`
	Feedback        string   `json:"feedback"`
	PlaytimeSeconds float64  `json:"playtimeSeconds"`
}

func PlaytestTicketFromRecord(r airtable.Record) PlaytestTicket {
	score := func(field string) *float64 {
		if r.IsEmpty(field) {
			return nil
		}
		v := r.Float(field)
		return &v
	}
	return PlaytestTicket{
		ID:              r.ID,
		PlaytestID:      r.String(FieldPlaytestID),
		Status:          r.String(FieldPlaytestStatus),
		GameID:          r.String(FieldPlaytestGame),
		FunScore:        score(FieldFunScore),
		ArtScore:        score(FieldArtScore),
		CreativityScore: score(FieldCreativityScore),
		AudioScore:      score(FieldAudioScore),
		MoodScore:       score(FieldMoodScore),
		Feedback:        r.String(FieldFeedback),
		PlaytimeSeconds: r.Float(FieldPlaytimeSeconds),
	}
}

// Game is a row of the Games table. Only the Hackatime assignment matters here.
type Game struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	HackatimeProjects []string `json:"hackatimeProjects"`
}

func GameFromRecord(r airtable.Record) Game {
	return Game{
		ID:                r.ID,
		Name:              r.String(FieldGameName),
		HackatimeProjects: r.Strings(FieldGameProjects),
	}
}

// Post is a row of the Posts table (devlog updates).
type Post struct {
	ID          string  `json:"id"`
	SlackID     string  `json:"slackId"`
	HoursSpent  float64 `json:"hoursSpent"`
	CreatedTime string  `json:"createdTime"`
}

func PostFromRecord(r airtable.Record) Post {
	created := r.String(FieldPostCreated)
	if created == "" {
		created = r.CreatedTime
	}
	return Post{
		ID:          r.ID,
		SlackID:     r.String(FieldPostSlackID),
		HoursSpent:  r.Float(FieldPostHours),
		CreatedTime: created,
	}
}
