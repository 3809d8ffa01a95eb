package domain

// DefaultProfile returns the built-in profile used when none is stored.
func DefaultProfile() Profile {
	return Profile{
		Name:                   "Robinho",
		Role:                   "Social Manager • Filmmaker",
		AvatarURL:              "https://lh3.googleusercontent.com/d/1zA-juipd9qjJ8ljmZ5-CHpJBczzXabfM",
		Email:                  "robsonjeffersonrocha@gmail.com",
		InstagramHandle:        "rjefferxz",
		WhatsAppNumber:         "5511999999999",
		WhatsAppDefaultMessage: "Oi!\nCheguei pelo seu link no Instagram e quero contratar seus serviços de comunicação/social media.\nMe conta como funciona?",
		PortfolioLinkURL:       "https://drive.google.com/drive/folders/1ohAfJ_aybS5bA4FiLDv_MHZtxeC7s3sT?usp=drive_link",
	}
}

// DefaultBlocks returns the built-in block list: one block of each kind.
func DefaultBlocks() []ContentBlock {
	return []ContentBlock{
		{
			ID:         "1",
			Kind:       KindSocial,
			Title:      "Instagram",
			Subtitle:   "Social Media Management",
			URL:        "https://www.instagram.com/rjefferxz/",
			ColumnSpan: 4,
			RowSpan:    1,
		},
		{
			ID:         "2",
			Kind:       KindText,
			Title:      "Minha Missão",
			Content:    "Especialista em gestão de redes sociais e produção audiovisual. Transformo marcas através de narrativas visuais impactantes e estratégias de engajamento real.",
			ColumnSpan: 2,
			RowSpan:    1,
		},
		{
			ID:         "3",
			Kind:       KindLink,
			Title:      "Portfólio Completo",
			Subtitle:   "Confira meus trabalhos no Drive",
			URL:        "https://drive.google.com/drive/folders/1ohAfJ_aybS5bA4FiLDv_MHZtxeC7s3sT?usp=drive_link",
			ColumnSpan: 1,
			RowSpan:    2,
		},
		{
			ID:         "5",
			Kind:       KindImage,
			ImageURL:   "https://lh3.googleusercontent.com/d/16-_jQ5tWWxH9hxXevpRsRTkXCyqmWcSo",
			ColumnSpan: 1,
			RowSpan:    1,
		},
		{
			ID:         "6",
			Kind:       KindMap,
			Title:      "Localização",
			ImageURL:   "https://lh3.googleusercontent.com/d/1JSQaHYF0Fb0iN_Pj71cDol7x5mX8nd2f",
			ColumnSpan: 1,
			RowSpan:    1,
		},
	}
}
