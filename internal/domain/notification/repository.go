package notification

import "context"

// Repository defines the platform API surface the console needs for
// notification configuration. All persistence lives behind the platform; the
// console holds no rule state of its own between requests.
type Repository interface {
	// ListRules returns the persisted rules of one integration
	ListRules(ctx context.Context, businessID, integrationID int64) ([]Rule, error)

	// SyncRules submits the desired final rule set in one batch call and
	// returns the platform's per-operation counts
	SyncRules(ctx context.Context, businessID int64, req SyncRequest) (*SyncResult, error)

	// ListChannels returns the available delivery channels
	ListChannels(ctx context.Context, businessID int64) ([]Channel, error)

	// ListEventTypes returns the event types available on one channel
	ListEventTypes(ctx context.Context, businessID, channelID int64) ([]EventType, error)
}
