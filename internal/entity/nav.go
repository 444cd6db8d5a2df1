package entity

// Nav drives the right-hand side of the navigation bar.
type Nav struct {
	User            *User    `json:"user,omitempty"`
	SignedIn        bool     `json:"signed_in"`
	IsSeller        bool     `json:"is_seller"`
	ShowSearch      bool     `json:"show_search"`
	ShowCart        bool     `json:"show_cart"`
	ShowUserMenu    bool     `json:"show_user_menu"`
	ShowSignIn      bool     `json:"show_sign_in"`
	SignInURL       string   `json:"sign_in_url"`
	AfterSignOutURL string   `json:"after_sign_out_url"`
	SearchPath      string   `json:"search_path,omitempty"`
	SearchOptions   []string `json:"search_options,omitempty"`
}
