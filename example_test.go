package fernet_test

import (
	"errors"
	"fmt"
	"time"

	"github.com/vaultsandbox/fernet-go"
	"github.com/vaultsandbox/fernet-go/signing"
)

func Example() {
	key, err := fernet.GenerateKey()
	if err != nil {
		panic(err)
	}

	f, err := fernet.New(key)
	if err != nil {
		panic(err)
	}

	token, err := f.Encrypt([]byte("secret message"))
	if err != nil {
		panic(err)
	}

	plaintext, err := f.Decrypt(token, time.Minute)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(plaintext))
	// Output: secret message
}

func ExampleFernet_DecryptAtTime() {
	f, err := fernet.New("AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA=")
	if err != nil {
		panic(err)
	}

	token, err := f.EncryptAtTime([]byte("hello"), 1000)
	if err != nil {
		panic(err)
	}

	_, err = f.DecryptAtTime(token, 30*time.Second, 1031)
	fmt.Println(errors.Is(err, fernet.ErrInvalidToken))

	plaintext, err := f.DecryptAtTime(token, 30*time.Second, 1029)
	fmt.Println(string(plaintext), err)
	// Output:
	// true
	// hello <nil>
}

func ExampleWithSignerFactory() {
	f, err := fernet.New("AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA=",
		fernet.WithSignerFactory(signing.NewTimestampSignerFactory(signing.WithAlgorithm("sha512"))))
	if err != nil {
		panic(err)
	}

	token, err := f.EncryptAtTime([]byte("hello"), 1000)
	if err != nil {
		panic(err)
	}

	ts, err := f.ExtractTimestamp(token)
	fmt.Println(ts, err)
	// Output: 1000 <nil>
}

func ExampleNewFernetBytes() {
	f, err := fernet.NewFernetBytes(make([]byte, 24))
	if err != nil {
		panic(err)
	}

	token, err := f.EncryptAtTime([]byte("raw token"), 1000)
	if err != nil {
		panic(err)
	}

	plaintext, err := f.DecryptAtTime(token, 0, 5000)
	fmt.Println(string(plaintext), err)
	// Output: raw token <nil>
}
