package main

import (
	"fmt"
	"os"

	"github.com/saifulislam1431/Post-Disaster-Community-server/cmd/cli/auth"
	"github.com/saifulislam1431/Post-Disaster-Community-server/cmd/cli/donors"
	"github.com/saifulislam1431/Post-Disaster-Community-server/cmd/cli/posts"
	"github.com/saifulislam1431/Post-Disaster-Community-server/cmd/cli/root"
)

func main() {
	rootCmd := root.GetRoot()

	auth.InitAuth(rootCmd)
	posts.InitPosts(rootCmd)
	donors.InitDonors(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
