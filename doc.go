/*
Package wfproxyは、ワークフロープロキシプロトコルのクライアント実装パッケージです。

ここではプロキシ接続までの一連の流れについて説明します。

# Connect To Workflow Proxy

このサンプルではwfproxy-goを使って外部プロキシに接続します。

	package main

	import (
		"context"
		"flag"
		"log"

		"github.com/wfproxy/wfproxy-go/transport/websocket/gorilla"
		"github.com/wfproxy/wfproxy-go/wfproxy"
		"golang.org/x/oauth2/clientcredentials"
	)

	func main() {
		var (
			address       string
			domain        string
			clientID      string
			clientSecret  string
			tokenEndpoint string
		)

		flag.StringVar(&address, "a", "ws://localhost:5000", "proxy address")
		flag.StringVar(&domain, "d", "default", "domain")
		flag.StringVar(&clientID, "i", "", "oauth2 client id")
		flag.StringVar(&clientSecret, "s", "", "oauth2 client secret")
		flag.StringVar(&tokenEndpoint, "te", "http://localhost:5000/oauth2/token", "oauth2 token endpoint")
		flag.Parse()

		ctx := context.Background()

		// WebSocketトランスポートの実装を登録します。
		gorilla.Register()

		// クライアントクレデンシャルタイプでトークン交換を行います。
		c := clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenEndpoint,
		}

		conn, err := wfproxy.Connect(&wfproxy.Settings{
			Servers:      []string{address},
			Domain:       domain,
			CreateDomain: true,
			TokenSource:  c.TokenSource(ctx),
		})
		if err != nil {
			log.Fatalf("failed to open connection: %v", err)
		}
		defer conn.Dispose()

		// フレーミングの疎通を確認します。
		res, err := conn.Echo(ctx, "hello")
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("echo: %s", res)
	}

# Synchronous Signals

実行中のワークフローへの同期シグナルは、SignalQueueで受信しSyncSignalWorkflowで
送信します。送信側はワークフロー本体がReplyを呼ぶまでブロックします。

	q, err := wfproxy.NewSignalQueue[ApproveArgs](conn, contextID, 16)
	if err != nil {
		log.Fatal(err)
	}
	defer q.Close()

	for {
		inv, err := q.Dequeue(ctx)
		if err != nil {
			break
		}
		// シグナルを処理し、結果を送信側へ返します。
		inv.Reply(ctx, result)
	}
*/
package wfproxy
