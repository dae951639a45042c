package core

// Profile carries author fields extracted from a metadata file. A nil field
// means the source did not provide a value, not that the value is empty.
type Profile struct {
	Name        *string
	Nick        *string
	Location    *string
	Description *string
	Verified    *bool
	AvatarURL   *string

	FavouritesCount *int
	FollowersCount  *int
	FriendsCount    *int
	ListedCount     *int
	MediaCount      *int
	StatusesCount   *int
}

// Apply overwrites the author's fields with the profile's non-nil values.
// Fields the profile does not provide keep whatever was stored before.
func (p Profile) Apply(a *Author) {
	if p.Name != nil {
		a.Name = p.Name
	}
	if p.Nick != nil {
		a.Nick = p.Nick
	}
	if p.Location != nil {
		a.Location = p.Location
	}
	if p.Description != nil {
		a.Description = p.Description
	}
	if p.Verified != nil {
		a.Verified = p.Verified
	}
	if p.AvatarURL != nil {
		a.AvatarURL = p.AvatarURL
	}
	if p.FavouritesCount != nil {
		a.FavouritesCount = p.FavouritesCount
	}
	if p.FollowersCount != nil {
		a.FollowersCount = p.FollowersCount
	}
	if p.FriendsCount != nil {
		a.FriendsCount = p.FriendsCount
	}
	if p.ListedCount != nil {
		a.ListedCount = p.ListedCount
	}
	if p.MediaCount != nil {
		a.MediaCount = p.MediaCount
	}
	if p.StatusesCount != nil {
		a.StatusesCount = p.StatusesCount
	}
}
