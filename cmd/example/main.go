package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	mention "github.com/mazi76erX2/mention-go"
	"github.com/mazi76erX2/mention-go/pkg/types"
)

func main() {
	// Get credentials from environment variables
	accessToken := os.Getenv("MENTION_ACCESS_TOKEN")
	accountID := os.Getenv("MENTION_ACCOUNT_ID")
	alertID := os.Getenv("MENTION_ALERT_ID")

	if accessToken == "" || accountID == "" {
		log.Fatal("MENTION_ACCESS_TOKEN and MENTION_ACCOUNT_ID environment variables are required")
	}

	// Route structured logs to stdout; adjust the level as needed.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	client, err := mention.NewClient(&mention.Config{
		AccessToken: accessToken,
		UserAgent:   "mention-go-example/1.0",
		Logger:      logger,
	})
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	ctx := context.Background()

	// Fetch the reference data the API accepts for filters
	appData, err := client.AppData(ctx)
	if err != nil {
		log.Fatalf("Failed to fetch app data: %v", err)
	}
	fmt.Printf("API knows %d languages, %d countries, %d sources\n",
		len(appData.Languages), len(appData.Countries), len(appData.Sources))

	// List the account's alerts
	alerts, err := client.ListAlerts(ctx, accountID)
	if err != nil {
		log.Fatalf("Failed to list alerts: %v", err)
	}
	fmt.Printf("\nAlerts on account %s:\n", accountID)
	for i, alert := range alerts.Alerts {
		fmt.Printf("%d. %s (id: %s)\n", i+1, alert.Name, alert.ID)
	}

	// Pick an alert: the one from the environment, or the first one found
	if alertID == "" {
		if len(alerts.Alerts) == 0 {
			log.Fatal("No alerts available; set MENTION_ALERT_ID or create an alert first")
		}
		alertID = alerts.Alerts[0].ID.String()
	}

	// List recent inbox mentions for the alert
	mentions, err := client.ListMentions(ctx, &types.MentionsRequest{
		AccountID: accountID,
		AlertID:   alertID,
		Folder:    types.FolderInbox,
		Limit:     10,
		Sort:      types.SortPublishedAt,
	})
	if err != nil {
		log.Fatalf("Failed to list mentions: %v", err)
	}
	fmt.Printf("\nRecent mentions for alert %s:\n", alertID)
	for i, m := range mentions.Mentions {
		fmt.Printf("%d. %s (%s, tone: %d)\n", i+1, m.Title, m.SourceName, m.Tone)
	}
	if mentions.Cursor != nil && mentions.Cursor.Next != "" {
		fmt.Printf("Next page cursor: %s\n", mentions.Cursor.Next)
	}

	// Demonstrate curation: favorite the first mention and mark it read
	if len(mentions.Mentions) > 0 {
		first := mentions.Mentions[0]
		favorite := true
		read := true
		updated, err := client.CurateMention(ctx, &types.CurateMentionRequest{
			AccountID: accountID,
			AlertID:   alertID,
			MentionID: first.ID.String(),
			Favorite:  &favorite,
			Read:      &read,
		})
		if err != nil {
			log.Printf("Failed to curate mention: %v", err)
		} else {
			fmt.Printf("\nCurated mention %s: favorite=%v read=%v\n",
				updated.ID, updated.Favorite, updated.Read)
		}

		// Fetch the conversation thread around it, if any
		if first.ChildrenCount > 0 {
			children, err := client.GetMentionChildren(ctx, &types.MentionChildrenRequest{
				AccountID: accountID,
				AlertID:   alertID,
				MentionID: first.ID.String(),
				Limit:     5,
			})
			if err != nil {
				log.Printf("Failed to fetch mention children: %v", err)
			} else {
				fmt.Printf("Thread has %d children\n", len(children.Mentions))
			}
		}
	}

	// Finally, clear the unread counter for the alert
	if err := client.MarkAllMentionsRead(ctx, accountID, alertID); err != nil {
		log.Printf("Failed to mark mentions as read: %v", err)
	} else {
		fmt.Println("\nAll mentions marked as read")
	}
}
